// Package resolver maps noisy free-text entity references to canonical
// catalog names. A deterministic fuzzy pass handles the common near-miss for
// free; genuinely ambiguous shortlists are handed to a Disambiguation Oracle.
package resolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	gocache "github.com/patrickmn/go-cache"

	"verse-trader/internal/logger"
)

const (
	// shortlistCutoff admits speech-to-text variants; deliberately loose.
	shortlistCutoff = 0.2
	// shortlistCap bounds what the oracle has to read.
	shortlistCap = 10
	// degradeBar is the similarity a local candidate must clear before we
	// trust it without the oracle.
	degradeBar = 0.85
)

// AliasRecorder persists a learned heard-form → canonical-name pair.
type AliasRecorder interface {
	SaveAlias(heard, canonical string) error
}

type cachedResult struct {
	name string
	ok   bool
}

// Resolver memoizes resolutions for the life of a catalog generation.
type Resolver struct {
	oracle  Oracle
	aliases AliasRecorder
	memo    *gocache.Cache
}

// New creates a Resolver. Both oracle and aliases may be nil: without an
// oracle ambiguous searches fall back to the local similarity bar, and
// without a recorder aliases are simply not persisted.
func New(oracle Oracle, aliases AliasRecorder) *Resolver {
	return &Resolver{
		oracle:  oracle,
		aliases: aliases,
		memo:    gocache.New(gocache.NoExpiration, 0),
	}
}

// Flush drops every memoized resolution. Must be called on catalog reload —
// cached answers must never outlive the candidate sets they came from.
func (r *Resolver) Flush() {
	r.memo.Flush()
}

// Resolve maps search to a member of candidates. The second return value
// reports success; the returned name is always a literal member of
// candidates, never the raw search text.
func (r *Resolver) Resolve(ctx context.Context, search string, candidates []string) (string, bool) {
	if search == "" || len(candidates) == 0 {
		return "", false
	}

	for _, c := range candidates {
		if strings.EqualFold(c, search) {
			return c, true
		}
	}

	cacheKey := checksum(search, candidates)
	if v, hit := r.memo.Get(cacheKey); hit {
		res := v.(cachedResult)
		return res.name, res.ok
	}

	shortlist, best, bestScore := r.shortlist(search, candidates)
	if len(shortlist) == 0 {
		r.memo.SetDefault(cacheKey, cachedResult{})
		return "", false
	}

	answer, ok := r.consultOracle(ctx, search, shortlist, best, bestScore)
	r.memo.SetDefault(cacheKey, cachedResult{name: answer, ok: ok})
	if ok {
		r.recordAlias(search, answer)
	}
	return answer, ok
}

// shortlist gathers similarity matches plus substring hits, capped, and also
// reports the single best similarity candidate for oracle-outage fallback.
func (r *Resolver) shortlist(search string, candidates []string) (list []string, best string, bestScore float64) {
	type scored struct {
		name  string
		score float64
	}
	var matches []scored
	seen := make(map[string]bool)
	lowered := strings.ToLower(search)

	for _, c := range candidates {
		s := similarity(lowered, strings.ToLower(c))
		if s > bestScore {
			best, bestScore = c, s
		}
		if s >= shortlistCutoff {
			matches = append(matches, scored{c, s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > shortlistCap {
		matches = matches[:shortlistCap]
	}
	for _, m := range matches {
		if !seen[m.name] {
			seen[m.name] = true
			list = append(list, m.name)
		}
	}

	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), lowered) && !seen[c] {
			seen[c] = true
			list = append(list, c)
		}
	}
	return list, best, bestScore
}

// consultOracle delegates the shortlist decision, validating that the answer
// is a literal shortlist member. An unreachable oracle degrades to the best
// local candidate only when it clears the high similarity bar.
func (r *Resolver) consultOracle(ctx context.Context, search string, shortlist []string, best string, bestScore float64) (string, bool) {
	if r.oracle == nil {
		if bestScore >= degradeBar {
			return best, true
		}
		return "", false
	}

	answer, err := r.oracle.Choose(ctx, shortlist, search)
	if err != nil {
		logger.Warn("Resolver", fmt.Sprintf("Oracle failed for %q: %v", search, err))
		if bestScore >= degradeBar {
			return best, true
		}
		return "", false
	}
	if answer == "" {
		return "", false
	}
	for _, c := range shortlist {
		if c == answer {
			return c, true
		}
	}
	logger.Warn("Resolver", fmt.Sprintf("Oracle answer %q not in shortlist, ignoring", answer))
	return "", false
}

func (r *Resolver) recordAlias(heard, canonical string) {
	if r.aliases == nil {
		return
	}
	if err := r.aliases.SaveAlias(heard, canonical); err != nil {
		logger.Warn("Resolver", fmt.Sprintf("Alias save failed: %v", err))
	}
}

// checksum identifies a (candidate set, search) pair without hashing every
// member: length plus first element pins the set for the life of a catalog
// generation.
func checksum(search string, candidates []string) string {
	k := fmt.Sprintf("%d--%s--%s", len(candidates), candidates[0], search)
	return strings.ReplaceAll(k, " ", "")
}

// similarity is 1 - normalized edit distance over the longer input.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}
