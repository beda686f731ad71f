package hashmap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	dsc "github.com/szmathias/dscontainers"
)

func TestShallowCopyMembership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	m := newStringMap(t)
	for i := 0; i < 12; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}
	c := m.Copy()
	if c.Size() != m.Size() {
		t.Fatalf("copy size %d, source size %d", c.Size(), m.Size())
	}
	if c.BucketCount() != m.BucketCount() {
		t.Errorf("copy bucket count %d, source %d", c.BucketCount(), m.BucketCount())
	}
	// membership and values only; chain order is not part of the contract
	for k, v := range m.All() {
		if got, ok := c.Get(k); !ok || got != v {
			t.Errorf("copy misses %q=%d (got %d, ok=%v)", k, v, got, ok)
		}
	}
	c.Put("extra", 99)
	if m.Contains("extra") {
		t.Errorf("mutating the copy leaked into the source")
	}
}

func ptrHash(s *string) uint64    { return dsc.StringHash(*s) }
func ptrEquals(a, b *string) bool { return *a == *b }

// pointer-keyed map whose lifecycles duplicate the pointed-to payloads
func newPtrMap(t *testing.T, keyCopyErr, valCopyErr error, freed *int) *Map[*string, *int] {
	m, err := New[*string, *int](ptrHash, ptrEquals,
		WithKeyLifecycle[*string, *int](dsc.Lifecycle[*string]{
			Free: func(*string) {
				if freed != nil {
					*freed++
				}
			},
			Copy: func(s *string) (*string, error) {
				if keyCopyErr != nil {
					return nil, keyCopyErr
				}
				c := *s
				return &c, nil
			},
		}),
		WithValueLifecycle[*string, *int](dsc.Lifecycle[*int]{
			Free: func(*int) {
				if freed != nil {
					*freed++
				}
			},
			Copy: func(v *int) (*int, error) {
				if valCopyErr != nil {
					return nil, valCopyErr
				}
				c := *v
				return &c, nil
			},
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestCopyDeepDistinctPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	m := newPtrMap(t, nil, nil, nil)
	keys := make([]*string, 0, 5)
	for i := 0; i < 5; i++ {
		k := fmt.Sprintf("k%d", i)
		v := i
		kp := &k
		m.Put(kp, &v)
		keys = append(keys, kp)
	}
	c, err := m.CopyDeep()
	if err != nil {
		t.Fatalf("deep copy failed: %v", err)
	}
	if c.Size() != m.Size() {
		t.Fatalf("deep copy size %d, source %d", c.Size(), m.Size())
	}
	for _, kp := range keys {
		sv, _ := m.Get(kp)
		cv, ok := c.Get(kp)
		if !ok {
			t.Errorf("deep copy misses key %q", *kp)
			continue
		}
		if *cv != *sv {
			t.Errorf("deep copy value for %q differs: %d vs %d", *kp, *cv, *sv)
		}
		if cv == sv {
			t.Errorf("deep copy shares the value instance for %q", *kp)
		}
	}
	for ck := range c.All() {
		for _, sk := range keys {
			if ck == sk {
				t.Errorf("deep copy shares the key instance %q", *ck)
			}
		}
	}
}

func TestCopyDeepRequiresHooks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	m := newStringMap(t) // no copy hooks configured
	m.Put("a", 1)
	if _, err := m.CopyDeep(); !errors.Is(err, dsc.ErrMissingCapability) {
		t.Errorf("expected ErrMissingCapability, got %v", err)
	}
}

func TestCopyDeepRollsBackOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	freed := 0
	boom := errors.New("copy exploded")
	m := newPtrMap(t, nil, boom, &freed)
	for i := 0; i < 4; i++ {
		k := fmt.Sprintf("k%d", i)
		v := i
		m.Put(&k, &v)
	}
	if _, err := m.CopyDeep(); !errors.Is(err, boom) {
		t.Fatalf("expected the hook error, got %v", err)
	}
	// the failing entry's key copy plus everything copied before it must
	// have been disposed; with 4 entries and the value hook failing first,
	// that is at least the one dangling key copy
	if freed == 0 {
		t.Errorf("rollback disposed nothing")
	}
	if m.Size() != 4 {
		t.Errorf("failed deep copy mutated the source (size %d)", m.Size())
	}
}

func TestFromSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	src := newStringMap(t)
	for i := 0; i < 6; i++ {
		src.Put(fmt.Sprintf("k%d", i), i)
	}
	m, err := FromSeq(src.All(), dsc.StringHash, dsc.Equals[string], false)
	if err != nil {
		t.Fatalf("FromSeq failed: %v", err)
	}
	if m.Size() != src.Size() {
		t.Errorf("drained %d entries, expected %d", m.Size(), src.Size())
	}
	for k, v := range src.All() {
		if got, ok := m.Get(k); !ok || got != v {
			t.Errorf("drained map misses %q=%d", k, v)
		}
	}
}

func TestFromSeqDeepCopiesPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	src := newPtrMap(t, nil, nil, nil)
	keys := make([]*string, 0, 4)
	for i := 0; i < 4; i++ {
		k := fmt.Sprintf("k%d", i)
		v := i
		kp := &k
		src.Put(kp, &v)
		keys = append(keys, kp)
	}
	m, err := FromSeq(src.All(), ptrHash, ptrEquals, true,
		WithKeyLifecycle[*string, *int](dsc.Lifecycle[*string]{
			Copy: func(s *string) (*string, error) { c := *s; return &c, nil },
		}),
		WithValueLifecycle[*string, *int](dsc.Lifecycle[*int]{
			Copy: func(v *int) (*int, error) { c := *v; return &c, nil },
		}),
	)
	if err != nil {
		t.Fatalf("deep drain failed: %v", err)
	}
	if m.Size() != src.Size() {
		t.Fatalf("drained %d entries, expected %d", m.Size(), src.Size())
	}
	for _, kp := range keys {
		sv, _ := src.Get(kp)
		dv, ok := m.Get(kp)
		if !ok {
			t.Errorf("drained map misses key %q", *kp)
			continue
		}
		if *dv != *sv {
			t.Errorf("drained value for %q differs: %d vs %d", *kp, *dv, *sv)
		}
		if dv == sv {
			t.Errorf("deep drain shares the value instance for %q", *kp)
		}
	}
}

func TestFromSeqDeepRollsBackOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	src := newPtrMap(t, nil, nil, nil)
	for i := 0; i < 4; i++ {
		k := fmt.Sprintf("k%d", i)
		v := i
		src.Put(&k, &v)
	}
	boom := errors.New("copy exploded")
	freed := 0
	valCopies := 0
	_, err := FromSeq(src.All(), ptrHash, ptrEquals, true,
		WithKeyLifecycle[*string, *int](dsc.Lifecycle[*string]{
			Free: func(*string) { freed++ },
			Copy: func(s *string) (*string, error) { c := *s; return &c, nil },
		}),
		WithValueLifecycle[*string, *int](dsc.Lifecycle[*int]{
			Free: func(*int) { freed++ },
			Copy: func(v *int) (*int, error) {
				valCopies++
				if valCopies == 3 {
					return nil, boom
				}
				c := *v
				return &c, nil
			},
		}),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the hook error, got %v", err)
	}
	// two complete entries drained before the 3rd value copy failed: their
	// 2 keys and 2 values plus the failing entry's dangling key copy
	if freed != 5 {
		t.Errorf("rollback disposed %d copies, expected 5", freed)
	}
	if src.Size() != 4 {
		t.Errorf("failed deep drain mutated the source (size %d)", src.Size())
	}
}

func TestFromSeqDeepWithoutHooksFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	src := newStringMap(t)
	src.Put("a", 1)
	_, err := FromSeq(src.All(), dsc.StringHash, dsc.Equals[string], true)
	if !errors.Is(err, dsc.ErrMissingCapability) {
		t.Errorf("expected ErrMissingCapability, got %v", err)
	}
}

func TestFromIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc.hashmap")
	defer teardown()
	//
	src := newStringMap(t)
	src.Put("x", 10)
	src.Put("y", 20)
	it := src.Iterator()
	it.Next() // FromIterator resets, a used cursor is fine
	m, err := FromIterator(it, dsc.StringHash, dsc.Equals[string], false)
	if err != nil {
		t.Fatalf("FromIterator failed: %v", err)
	}
	if m.Size() != 2 {
		t.Errorf("expected both entries drained, size %d", m.Size())
	}
	if _, err := FromIterator[string, int](nil, dsc.StringHash, dsc.Equals[string], false); !errors.Is(err, dsc.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil iterator, got %v", err)
	}
}
