package hashset

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	dsc "github.com/szmathias/dscontainers"
)

func TestUnionIntersectionDifferenceScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashset")
	defer teardown()
	//
	a := newStringSet(t, "a", "b", "c")
	b := newStringSet(t, "c", "d", "e")
	//
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Size() != 5 {
		t.Errorf("expected |a∪b| = 5, have %d", u.Size())
	}
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if !u.Contains(k) {
			t.Errorf("union misses %q", k)
		}
	}
	//
	i, err := Intersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if i.Size() != 1 || !i.Contains("c") {
		t.Errorf("expected a∩b = {c}, have size %d", i.Size())
	}
	//
	d, err := Difference(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d.Size() != 2 || !d.Contains("a") || !d.Contains("b") {
		t.Errorf("expected a∖b = {a,b}, have size %d", d.Size())
	}
	// operands untouched
	if a.Size() != 3 || b.Size() != 3 {
		t.Errorf("algebra mutated an operand: |a|=%d |b|=%d", a.Size(), b.Size())
	}
}

func TestUnionCardinalityIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashset")
	defer teardown()
	//
	a := newStringSet(t)
	b := newStringSet(t)
	for i := 0; i < 20; i++ {
		a.Add(fmt.Sprintf("e%d", i))
	}
	for i := 10; i < 30; i++ {
		b.Add(fmt.Sprintf("e%d", i))
	}
	u, _ := Union(a, b)
	i, _ := Intersection(a, b)
	if u.Size() != a.Size()+b.Size()-i.Size() {
		t.Errorf("|a∪b| = %d, but |a|+|b|-|a∩b| = %d", u.Size(), a.Size()+b.Size()-i.Size())
	}
}

func TestDifferencePartitionsOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashset")
	defer teardown()
	//
	a := newStringSet(t, "1", "2", "3", "4", "5")
	b := newStringSet(t, "4", "5", "6")
	inter, _ := Intersection(a, b)
	diff, _ := Difference(a, b)
	// disjoint
	for k := range inter.All() {
		if diff.Contains(k) {
			t.Errorf("%q in both intersection and difference", k)
		}
	}
	// recombine to a
	recombined, _ := Union(inter, diff)
	if !Equal(recombined, a) {
		t.Errorf("intersection ∪ difference does not recombine to a")
	}
}

func TestIsSubset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashset")
	defer teardown()
	//
	empty := newStringSet(t)
	x := newStringSet(t, "a", "b")
	if !IsSubset(empty, x) {
		t.Errorf("∅ must be a subset of any set")
	}
	if !IsSubset(empty, empty) {
		t.Errorf("∅ must be a subset of itself")
	}
	if !IsSubset(x, x) {
		t.Errorf("a set must be a subset of itself")
	}
	sub := newStringSet(t, "a")
	if !IsSubset(sub, x) {
		t.Errorf("{a} must be a subset of {a,b}")
	}
	if IsSubset(x, sub) {
		t.Errorf("{a,b} must not be a subset of {a}")
	}
	disjoint := newStringSet(t, "z")
	if IsSubset(disjoint, x) {
		t.Errorf("{z} must not be a subset of {a,b}")
	}
}

func TestAlgebraRejectsNilOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashset")
	defer teardown()
	//
	s := newStringSet(t, "a")
	if _, err := Union[string](s, nil); !errors.Is(err, dsc.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument from union, got %v", err)
	}
	if _, err := Intersection[string](nil, s); !errors.Is(err, dsc.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument from intersection, got %v", err)
	}
	if _, err := Difference[string](nil, nil); !errors.Is(err, dsc.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument from difference, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashset")
	defer teardown()
	//
	a := newStringSet(t, "a", "b")
	b := newStringSet(t, "b", "a")
	c := newStringSet(t, "a", "c")
	if !Equal(a, b) {
		t.Errorf("sets with identical membership reported unequal")
	}
	if Equal(a, c) {
		t.Errorf("sets with different membership reported equal")
	}
}
