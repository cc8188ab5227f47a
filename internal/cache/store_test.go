package cache

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time { return c.at }

func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func newTestStore[K comparable, V any](capacity int, ttl time.Duration) (*Store[K, V], *fakeClock) {
	clk := &fakeClock{at: time.Unix(1_700_000_000, 0)}
	s := NewStore[K, V](capacity, ttl)
	s.now = clk.now
	return s, clk
}

func TestStoreGetSet(t *testing.T) {
	s, _ := newTestStore[string, int](10, time.Minute)

	if v, ok := s.Get("missing"); ok || v != 0 {
		t.Fatalf("Get(missing) = %d, %t; want 0, false", v, ok)
	}

	s.Set("answer", 42)
	if v, ok := s.Get("answer"); !ok || v != 42 {
		t.Fatalf("Get(answer) = %d, %t; want 42, true", v, ok)
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

// A cached zero value and an absent key only differ in the ok flag.
func TestStoreCachedZeroValue(t *testing.T) {
	s, _ := newTestStore[string, int](10, time.Minute)
	s.Set("zero", 0)

	if v, ok := s.Get("zero"); !ok || v != 0 {
		t.Fatalf("Get(zero) = %d, %t; want 0, true", v, ok)
	}
	if _, ok := s.Get("absent"); ok {
		t.Fatal("absent key reported cached")
	}
}

func TestStoreExpiry(t *testing.T) {
	s, clk := newTestStore[string, string](10, 10*time.Second)
	s.Set("k", "v")

	// Lifetime is inclusive: an entry is expired only strictly after
	// refresh + ttl.
	clk.advance(10 * time.Second)
	if _, ok := s.Get("k"); !ok {
		t.Fatal("entry expired at exactly ttl")
	}

	clk.advance(10*time.Second + time.Nanosecond)
	if _, ok := s.Get("k"); ok {
		t.Fatal("entry survived past ttl")
	}

	// The expired entry is dropped by the failed read itself.
	if got := s.Len(); got != 0 {
		t.Errorf("Len() after expired read = %d, want 0", got)
	}
}

func TestStoreReadRefreshesLifetime(t *testing.T) {
	s, clk := newTestStore[string, int](10, 10*time.Second)
	s.Set("hot", 1)
	s.Set("cold", 2)

	clk.advance(6 * time.Second)
	if _, ok := s.Get("hot"); !ok {
		t.Fatal("hot entry missing before ttl")
	}

	// 12s after Set: the untouched entry is gone, the read one lives on.
	clk.advance(6 * time.Second)
	if _, ok := s.Get("cold"); ok {
		t.Error("cold entry survived past ttl")
	}
	if v, ok := s.Get("hot"); !ok || v != 1 {
		t.Errorf("hot entry expired despite refresh: %d, %t", v, ok)
	}
}

func TestStoreSetTTL(t *testing.T) {
	s, clk := newTestStore[string, int](10, time.Hour)
	s.Set("default", 1)
	s.SetTTL("short", 2, time.Second)

	clk.advance(2 * time.Second)
	if _, ok := s.Get("short"); ok {
		t.Error("entry with short ttl survived")
	}
	if _, ok := s.Get("default"); !ok {
		t.Error("entry with default ttl expired")
	}
}

func TestStoreEvictsOldestAtCapacity(t *testing.T) {
	s, clk := newTestStore[string, int](4, time.Hour)
	for i, k := range []string{"a", "b", "c", "d"} {
		s.Set(k, i)
		clk.advance(time.Second)
	}

	s.Set("e", 4)

	if _, ok := s.Get("a"); ok {
		t.Error("oldest entry survived eviction")
	}
	for _, k := range []string{"b", "c", "d", "e"} {
		if _, ok := s.Get(k); !ok {
			t.Errorf("entry %q evicted unexpectedly", k)
		}
	}
	if got := s.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestStoreEvictsExpiredBeforeOldest(t *testing.T) {
	s, clk := newTestStore[string, int](4, 10*time.Second)
	for i, k := range []string{"a", "b", "c", "d"} {
		s.Set(k, i)
		clk.advance(time.Second)
	}

	// a and b are past their lifetime, c and d are not.
	clk.advance(7500 * time.Millisecond)
	s.Set("e", 4)

	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for _, k := range []string{"c", "d", "e"} {
		if _, ok := s.Get(k); !ok {
			t.Errorf("live entry %q evicted", k)
		}
	}
}

func TestStoreEvictsOldestQuarter(t *testing.T) {
	s, clk := newTestStore[int, int](8, time.Hour)
	for i := 0; i < 8; i++ {
		s.Set(i, i)
		clk.advance(time.Second)
	}

	s.Set(8, 8)

	if got := s.Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}
	for _, k := range []int{0, 1} {
		if _, ok := s.Get(k); ok {
			t.Errorf("entry %d should be evicted", k)
		}
	}
	for k := 2; k <= 8; k++ {
		if _, ok := s.Get(k); !ok {
			t.Errorf("entry %d evicted unexpectedly", k)
		}
	}
}

func TestStoreRemove(t *testing.T) {
	s, _ := newTestStore[string, int](10, time.Minute)
	s.Set("k", 1)

	if !s.Remove("k") {
		t.Error("Remove(k) = false, want true")
	}
	if s.Remove("k") {
		t.Error("Remove(k) twice = true, want false")
	}
	if _, ok := s.Get("k"); ok {
		t.Error("removed entry still cached")
	}
}

func TestStoreClearKeepsCounters(t *testing.T) {
	s, _ := newTestStore[string, int](10, time.Minute)
	s.Set("k", 1)
	s.Get("k")
	s.Get("nope")

	s.Clear()

	st := s.Stats()
	if st.Size != 0 {
		t.Errorf("Size after Clear = %d, want 0", st.Size)
	}
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("counters after Clear = %d/%d, want 1/1", st.Hits, st.Misses)
	}
}

func TestStoreStats(t *testing.T) {
	s, _ := newTestStore[string, int](5, time.Minute)

	st := s.Stats()
	if st.HitRatio != 0 {
		t.Errorf("HitRatio with no requests = %g, want 0", st.HitRatio)
	}
	if st.Capacity != 5 {
		t.Errorf("Capacity = %d, want 5", st.Capacity)
	}

	s.Set("k", 1)
	s.Get("k")
	s.Get("miss1")
	s.Get("miss2")
	s.Get("k")

	st = s.Stats()
	if st.Hits != 2 || st.Misses != 2 {
		t.Fatalf("hits/misses = %d/%d, want 2/2", st.Hits, st.Misses)
	}
	if st.HitRatio != 0.5 {
		t.Errorf("HitRatio = %g, want 0.5", st.HitRatio)
	}
	if st.Size != 1 {
		t.Errorf("Size = %d, want 1", st.Size)
	}
}

func TestStoreGetOrCompute(t *testing.T) {
	s, _ := newTestStore[string, int](10, time.Minute)

	calls := 0
	compute := func() int {
		calls++
		return 7
	}

	if v := s.GetOrCompute("k", compute); v != 7 {
		t.Fatalf("GetOrCompute = %d, want 7", v)
	}
	if v := s.GetOrCompute("k", compute); v != 7 {
		t.Fatalf("GetOrCompute (cached) = %d, want 7", v)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore[int, int](32, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := (g*31 + i) % 48
				s.Set(key, i)
				s.Get(key)
				if i%17 == 0 {
					s.Remove(key)
				}
				if i%29 == 0 {
					s.Stats()
				}
			}
		}()
	}
	wg.Wait()

	if got := s.Len(); got > 32 {
		t.Errorf("Len() = %d, want at most capacity 32", got)
	}
	s.Set(99, 1)
	if v, ok := s.Get(99); !ok || v != 1 {
		t.Errorf("Get(99) = %d, %v after concurrent use, want 1, true", v, ok)
	}
}
