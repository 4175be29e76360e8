package command

import (
	"context"
	"testing"
)

func noop(context.Context, Args) string { return "" }

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Spec{}, noop); err == nil {
		t.Fatal("empty name accepted")
	}
	if err := r.Register(Spec{Name: "op"}, nil); err == nil {
		t.Fatal("nil handler accepted")
	}
	if err := r.Register(Spec{
		Name:   "op",
		Params: []Param{{Name: "a", Type: ParamString}, {Name: "a", Type: ParamNumber}},
	}, noop); err == nil {
		t.Fatal("duplicate parameter accepted")
	}
	if err := r.Register(Spec{
		Name:   "op",
		Params: []Param{{Name: "a", Type: ParamType("integer")}},
	}, noop); err == nil {
		t.Fatal("unknown parameter type accepted")
	}

	if err := r.Register(Spec{Name: "op"}, noop); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
	if err := r.Register(Spec{Name: "op"}, noop); err == nil {
		t.Fatal("duplicate operation accepted")
	}
}

func TestSpecsKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"third", "first", "second"} {
		if err := r.Register(Spec{Name: name}, noop); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	specs := r.Specs()
	if len(specs) != 3 || specs[0].Name != "third" || specs[2].Name != "second" {
		t.Fatalf("specs = %+v", specs)
	}
}

func TestArgsDecoding(t *testing.T) {
	a := Args{
		"ship":    " Freelancer ",
		"blank":   "   ",
		"cur":     "Current",
		"n":       float64(3),
		"flag":    true,
		"list":    []any{"Hull C", " ", "Freelancer"},
		"badList": "not a list",
	}

	if v, ok := a.stringArg("ship").Supplied(); !ok || v != "Freelancer" {
		t.Fatalf("stringArg = %v %v, want trimmed value", v, ok)
	}
	if _, ok := a.stringArg("blank").Supplied(); ok {
		t.Fatal("blank string counted as supplied")
	}
	if _, ok := a.stringArg("cur").Supplied(); ok {
		t.Fatal("the current sentinel is not a literal value")
	}
	if n, ok := a.numberArg("n"); !ok || n != 3 {
		t.Fatalf("numberArg = %v %v", n, ok)
	}
	if _, ok := a.numberArg("missing"); ok {
		t.Fatal("missing number reported present")
	}
	if b, ok := a.boolArg("flag"); !ok || !b {
		t.Fatalf("boolArg = %v %v", b, ok)
	}
	list := a.stringListArg("list")
	if len(list) != 2 || list[0] != "Hull C" || list[1] != "Freelancer" {
		t.Fatalf("stringListArg = %v", list)
	}
	if a.stringListArg("badList") != nil {
		t.Fatal("non-list accepted")
	}
}
