package resolver

import (
	"context"
	"errors"
	"testing"
)

type fakeOracle struct {
	answer string
	err    error
	calls  int
}

func (f *fakeOracle) Choose(ctx context.Context, candidates []string, search string) (string, error) {
	f.calls++
	return f.answer, f.err
}

type fakeAliases struct {
	saved map[string]string
}

func (f *fakeAliases) SaveAlias(heard, canonical string) error {
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	f.saved[heard] = canonical
	return nil
}

var shipNames = []string{"Hull C", "Freelancer", "Caterpillar", "Constellation Taurus"}

func TestResolveExactMatchKeepsCanonicalCasing(t *testing.T) {
	r := New(nil, nil)
	got, ok := r.Resolve(context.Background(), "hull c", shipNames)
	if !ok || got != "Hull C" {
		t.Fatalf("Resolve = %q %v, want canonical Hull C", got, ok)
	}
}

func TestResolveDegradesWithoutOracle(t *testing.T) {
	r := New(nil, nil)
	// One character off clears the local similarity bar.
	locations := []string{"Port Tressler", "Everus Harbor", "Baijini Point"}
	got, ok := r.Resolve(context.Background(), "Port Tresler", locations)
	if !ok || got != "Port Tressler" {
		t.Fatalf("Resolve = %q %v", got, ok)
	}
}

func TestResolveRefusesWeakMatchWithoutOracle(t *testing.T) {
	r := New(nil, nil)
	if got, ok := r.Resolve(context.Background(), "Qwertyzorp", shipNames); ok {
		t.Fatalf("resolved nonsense to %q", got)
	}
}

func TestResolveNeverEchoesOracleInvention(t *testing.T) {
	oracle := &fakeOracle{answer: "Made Up Ship"}
	r := New(oracle, nil)
	if got, ok := r.Resolve(context.Background(), "freelancr", shipNames); ok {
		t.Fatalf("accepted an answer outside the shortlist: %q", got)
	}
}

func TestResolveAcceptsOracleShortlistMember(t *testing.T) {
	oracle := &fakeOracle{answer: "Constellation Taurus"}
	r := New(oracle, nil)
	got, ok := r.Resolve(context.Background(), "constelation", shipNames)
	if !ok || got != "Constellation Taurus" {
		t.Fatalf("Resolve = %q %v", got, ok)
	}
}

func TestResolveMemoizesOracleAnswers(t *testing.T) {
	oracle := &fakeOracle{answer: "Caterpillar"}
	r := New(oracle, nil)

	for i := 0; i < 3; i++ {
		if got, ok := r.Resolve(context.Background(), "catrpiller", shipNames); !ok || got != "Caterpillar" {
			t.Fatalf("Resolve #%d = %q %v", i, got, ok)
		}
	}
	if oracle.calls != 1 {
		t.Fatalf("oracle consulted %d times, want 1", oracle.calls)
	}
}

func TestResolveMemoizesMisses(t *testing.T) {
	r := New(nil, nil)
	r.Resolve(context.Background(), "Qwertyzorp", shipNames)
	// A second miss for the same pair must come from the memo; an oracle
	// appearing later must not change an already-cached answer.
	r.oracle = &fakeOracle{answer: "Hull C"}
	if _, ok := r.Resolve(context.Background(), "Qwertyzorp", shipNames); ok {
		t.Fatal("cached miss was re-resolved")
	}
}

func TestFlushDropsMemo(t *testing.T) {
	oracle := &fakeOracle{answer: "Caterpillar"}
	r := New(oracle, nil)
	r.Resolve(context.Background(), "catrpiller", shipNames)
	r.Flush()
	r.Resolve(context.Background(), "catrpiller", shipNames)
	if oracle.calls != 2 {
		t.Fatalf("oracle consulted %d times after flush, want 2", oracle.calls)
	}
}

func TestResolveFallsBackWhenOracleFails(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("rate limited")}
	r := New(oracle, nil)
	locations := []string{"Port Tressler", "Everus Harbor"}
	got, ok := r.Resolve(context.Background(), "Port Tresler", locations)
	if !ok || got != "Port Tressler" {
		t.Fatalf("Resolve = %q %v, want local fallback", got, ok)
	}
}

func TestResolveRecordsAliases(t *testing.T) {
	aliases := &fakeAliases{}
	r := New(nil, aliases)
	locations := []string{"Port Tressler", "Everus Harbor"}
	r.Resolve(context.Background(), "Port Tresler", locations)
	if aliases.saved["Port Tresler"] != "Port Tressler" {
		t.Fatalf("alias not recorded: %v", aliases.saved)
	}

	// Exact matches are not worth learning.
	r.Resolve(context.Background(), "everus harbor", locations)
	if _, ok := aliases.saved["everus harbor"]; ok {
		t.Fatal("exact match should not record an alias")
	}
}

func TestSimilarity(t *testing.T) {
	if got := similarity("laranite", "laranite"); got != 1 {
		t.Fatalf("identical similarity = %v", got)
	}
	if got := similarity("", ""); got != 1 {
		t.Fatalf("empty identical similarity = %v", got)
	}
	if got := similarity("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint similarity = %v", got)
	}
}
