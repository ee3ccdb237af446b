package factory

import "testing"

type sample struct{ A int }

type sampleOpts struct {
	A int
}

// Test registry registration and instantiation.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample, sampleOpts]()
	if err := reg.Register("s", func(o sampleOpts) (*sample, error) {
		return &sample{A: o.A}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create("s", sampleOpts{A: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.A != 3 {
		t.Fatalf("expected 3 got %d", inst.A)
	}
	if !reg.Has("s") || reg.Has("t") {
		t.Fatal("unexpected Has result")
	}
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int, struct{}]()
	if err := reg.Register("x", func(struct{}) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(struct{}) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("z", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if _, err := reg.Create("y", struct{}{}); err == nil {
		t.Fatal("expected unknown type error")
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry[int, struct{}]()
	for _, n := range []string{"b", "c", "a"} {
		if err := reg.Register(n, func(struct{}) (int, error) { return 0, nil }); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
	got := reg.Names()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected names %v", got)
	}
}
