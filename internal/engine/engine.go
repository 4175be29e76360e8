// Package engine implements the trading intelligence on top of an immutable
// catalog Index: price lookups, route optimization, route aggregation and the
// readable output conversions. The engine is stateless apart from a display
// cache tied to the Index it was built with; a catalog reload replaces the
// whole Engine.
package engine

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"verse-trader/internal/catalog"
)

// Engine answers trading questions against one catalog generation.
type Engine struct {
	ix      *catalog.Index
	display *gocache.Cache
}

// New creates an Engine over the given index. The display cache starts empty
// and lives exactly as long as the Engine, so converted output can never
// outlive the catalog it was rendered from.
func New(ix *catalog.Index) *Engine {
	return &Engine{
		ix:      ix,
		display: gocache.New(gocache.NoExpiration, 0),
	}
}

// Index returns the catalog index this engine answers from.
func (e *Engine) Index() *catalog.Index { return e.ix }

func lc(s string) string { return strings.ToLower(s) }
