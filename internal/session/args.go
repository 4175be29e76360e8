// Package session remembers the last-used value of each logical request
// argument so elliptical follow-ups ("sell it there") work without the
// conversational layer tracking state.
package session

import "sync"

type kind int

const (
	kindGiven kind = iota
	kindAbsent
	kindUseLast
)

// Value is the explicit three-way signal for an incoming argument: supplied,
// explicitly absent, or "use the last known value".
type Value struct {
	kind kind
	val  any
}

// Given wraps a supplied argument value.
func Given(v any) Value { return Value{kind: kindGiven, val: v} }

// Absent marks an argument the caller did not supply.
func Absent() Value { return Value{kind: kindAbsent} }

// UseLast asks for the cached value ("current" on the wire).
func UseLast() Value { return Value{kind: kindUseLast} }

// Supplied returns the literal value and true when one was given.
func (v Value) Supplied() (any, bool) {
	if v.kind == kindGiven && v.val != nil {
		return v.val, true
	}
	return nil, false
}

// ArgCache is the session-lifetime store of last resolved argument values.
type ArgCache struct {
	mu      sync.Mutex
	enabled bool
	vals    map[string]any
}

// NewArgCache returns an enabled, empty cache.
func NewArgCache() *ArgCache {
	return &ArgCache{enabled: true, vals: make(map[string]any)}
}

// Resolve returns the effective value for an argument: a supplied value is
// passed through untouched, otherwise the cached value (nil if none). With
// the cache disabled only supplied values come through.
func (c *ArgCache) Resolve(name string, v Value) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v.kind == kindGiven && v.val != nil {
		return v.val
	}
	if !c.enabled {
		return nil
	}
	return c.vals[name]
}

// Set stores a resolved value; nil deletes the entry. No-op while disabled.
func (c *ArgCache) Set(name string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	if v == nil {
		delete(c.vals, name)
		return
	}
	c.vals[name] = v
}

// Reset clears every entry. Called on catalog reload.
func (c *ArgCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals = make(map[string]any)
}

// Disable suspends reads and writes; the aggregator disables the cache
// around its fan-out so sub-searches cannot contaminate the session.
func (c *ArgCache) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
}

// Enable resumes normal operation.
func (c *ArgCache) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

// Snapshot returns a copy of the current entries for diagnostics.
func (c *ArgCache) Snapshot() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(c.vals))
	for k, v := range c.vals {
		out[k] = v
	}
	return out
}
