// Package command exposes the trading operations behind a name-addressed
// registry. Every operation declares its parameter schema up front; dispatch
// validates the name, decodes arguments and contains handler faults so one
// broken operation can never take the engine down.
package command

import (
	"context"
	"fmt"
)

// ParamType is the JSON type an operation parameter accepts.
type ParamType string

const (
	ParamString     ParamType = "string"
	ParamNumber     ParamType = "number"
	ParamBoolean    ParamType = "boolean"
	ParamStringList ParamType = "array"
)

// Param declares one named operation parameter. All parameters are optional;
// operations report missing required inputs as speakable text themselves.
type Param struct {
	Name string    `json:"name"`
	Type ParamType `json:"type"`
}

// Handler executes one operation. The returned string is always speakable
// text, including validation failures.
type Handler func(ctx context.Context, args Args) string

// Spec couples an operation name with its parameter schema and handler.
type Spec struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"parameters"`

	handler Handler
}

// Registry maps operation names to their specs. Registration validates the
// schema; lookups at dispatch time cannot fail structurally anymore.
type Registry struct {
	byName map[string]Spec
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Spec)}
}

// Register adds a spec after validating it: non-empty name, a handler, and
// uniquely named parameters of a known type.
func (r *Registry) Register(s Spec, h Handler) error {
	if s.Name == "" {
		return fmt.Errorf("register: empty operation name")
	}
	if h == nil {
		return fmt.Errorf("register %s: nil handler", s.Name)
	}
	if _, dup := r.byName[s.Name]; dup {
		return fmt.Errorf("register %s: duplicate operation", s.Name)
	}
	seen := make(map[string]bool, len(s.Params))
	for _, p := range s.Params {
		if p.Name == "" {
			return fmt.Errorf("register %s: unnamed parameter", s.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("register %s: duplicate parameter %s", s.Name, p.Name)
		}
		seen[p.Name] = true
		switch p.Type {
		case ParamString, ParamNumber, ParamBoolean, ParamStringList:
		default:
			return fmt.Errorf("register %s: parameter %s has unknown type %q", s.Name, p.Name, p.Type)
		}
	}
	s.handler = h
	r.byName[s.Name] = s
	r.order = append(r.order, s.Name)
	return nil
}

// mustRegister is for the static operation table; a schema mistake there is a
// programming error.
func (r *Registry) mustRegister(s Spec, h Handler) {
	if err := r.Register(s, h); err != nil {
		panic(err)
	}
}

// Lookup returns the spec for an operation name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Specs returns every registered spec in registration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
