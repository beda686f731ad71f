package arraylist

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/utils"

	dsc "github.com/szmathias/dscontainers"
)

func TestAddGetSize(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ { // crosses several growth steps
		l.Add(i)
	}
	if l.Size() != 100 {
		t.Fatalf("expected size 100, have %d", l.Size())
	}
	for i := 0; i < 100; i++ {
		if v, ok := l.Get(i); !ok || v != i {
			t.Errorf("index %d: expected %d, have %d (ok=%v)", i, i, v, ok)
		}
	}
	if _, ok := l.Get(100); ok {
		t.Errorf("out-of-range Get succeeded")
	}
}

func TestInsertAndRemoveAt(t *testing.T) {
	l := New[string]()
	l.Add("a", "c")
	if err := l.Insert(1, "b"); err != nil {
		t.Fatal(err)
	}
	if v, _ := l.Get(1); v != "b" {
		t.Errorf("expected b at index 1, have %q", v)
	}
	if err := l.Insert(3, "d"); err != nil { // append position
		t.Fatal(err)
	}
	if err := l.Insert(9, "x"); !errors.Is(err, dsc.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	v, err := l.RemoveAt(0)
	if err != nil || v != "a" {
		t.Errorf("expected to remove a, got %q (%v)", v, err)
	}
	if l.Size() != 3 {
		t.Errorf("expected size 3, have %d", l.Size())
	}
	if _, err := l.RemoveAt(17); !errors.Is(err, dsc.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestIndexOfNeedsEquals(t *testing.T) {
	bare := New[int]()
	bare.Add(1, 2, 3)
	if bare.IndexOf(2) != -1 {
		t.Errorf("IndexOf without equals must return -1")
	}
	l := New[int](WithEquals(dsc.Equals[int]))
	l.Add(10, 20, 30)
	if i := l.IndexOf(20); i != 1 {
		t.Errorf("expected index 1, have %d", i)
	}
	if l.Contains(40) {
		t.Errorf("list claims to contain 40")
	}
}

func TestSortWithComparator(t *testing.T) {
	l := New[int]()
	l.Add(3, 1, 4, 1, 5, 9, 2, 6)
	l.Sort(utils.IntComparator)
	want := []int{1, 1, 2, 3, 4, 5, 6, 9}
	got := l.Values()
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("sorted order wrong at %d: %v", i, got)
		}
	}
}

func TestClearAndAll(t *testing.T) {
	l := New[int](WithCapacity[int](4))
	l.Add(1, 2, 3)
	n := 0
	for range l.All() {
		n++
	}
	if n != 3 {
		t.Errorf("expected 3 elements from All, have %d", n)
	}
	l.Clear()
	if l.Size() != 0 {
		t.Errorf("expected empty list after Clear, size %d", l.Size())
	}
	l.Add(7)
	if v, _ := l.Get(0); v != 7 {
		t.Errorf("list unusable after Clear")
	}
}
