package numbuf

import "testing"

func TestAddGet(t *testing.T) {
	b := New()
	i0 := b.Add(3.14)
	i1 := b.Add(-1.5)

	if got := b.Get(i0); got != 3.14 {
		t.Errorf("Get(%d) = %v, want 3.14", i0, got)
	}
	if got := b.Get(i1); got != -1.5 {
		t.Errorf("Get(%d) = %v, want -1.5", i1, got)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestIndicesNeverReused(t *testing.T) {
	b := New()
	seen := map[uint32]bool{}
	for i := 0; i < 10; i++ {
		idx := b.Add(float64(i))
		if seen[idx] {
			t.Fatalf("index %d reused", idx)
		}
		seen[idx] = true
	}
}

func TestOutOfRangeReadsZero(t *testing.T) {
	b := New()
	b.Add(1.0)
	if got := b.Get(100); got != 0.0 {
		t.Errorf("Get(100) = %v, want 0.0", got)
	}
}
