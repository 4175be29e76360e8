package command

import (
	"strings"

	"verse-trader/internal/session"
)

// currentSentinel is how the conversational layer says "whatever we were just
// talking about". It is translated to a session lookup at this boundary and
// never reaches the resolver as a searchable name.
const currentSentinel = "current"

// Args is the decoded JSON argument object of one request.
type Args map[string]any

// stringArg reads a string parameter as a three-state session value.
func (a Args) stringArg(name string) session.Value {
	v, ok := a[name]
	if !ok || v == nil {
		return session.Absent()
	}
	s, ok := v.(string)
	if !ok {
		return session.Absent()
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return session.Absent()
	}
	if strings.EqualFold(s, currentSentinel) {
		return session.UseLast()
	}
	return session.Given(s)
}

// numberArg reads a numeric parameter; ok is false when absent or not a
// number.
func (a Args) numberArg(name string) (float64, bool) {
	v, ok := a[name]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// boolArg reads a boolean parameter; ok is false when absent.
func (a Args) boolArg(name string) (bool, bool) {
	v, ok := a[name]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// stringListArg reads a string-array parameter, dropping blank entries.
func (a Args) stringListArg(name string) []string {
	v, ok := a[name]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
