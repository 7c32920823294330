package prng

import "testing"

func TestNewSeedDeterministic(t *testing.T) {
	s1 := NewSeed(42)
	s2 := NewSeed(42)

	v1, _ := s1.UniformIntInRange(0, 1000)
	v2, _ := s2.UniformIntInRange(0, 1000)
	if v1 != v2 {
		t.Fatalf("same seed produced different draws: %d != %d", v1, v2)
	}
}

func TestUniformIntInRangeBounds(t *testing.T) {
	s := NewSeed(7)
	for i := 0; i < 1000; i++ {
		var v int64
		v, s = s.UniformIntInRange(4, 8)
		if v < 4 || v > 8 {
			t.Fatalf("UniformIntInRange(4,8) produced out-of-range value %d", v)
		}
	}
}

func TestUniformIntInRangeEmptyRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for lo > hi")
		}
	}()
	NewSeed(1).UniformIntInRange(5, 4)
}

func TestUniformFloatRange(t *testing.T) {
	s := NewSeed(99)
	for i := 0; i < 1000; i++ {
		var f float64
		f, s = s.UniformFloat()
		if f < 0.0 || f >= 1.0 {
			t.Fatalf("UniformFloat produced out-of-range value %v", f)
		}
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	s := NewSeed(123)
	l1, r1 := s.Split()
	l2, r2 := s.Split()
	if l1 != l2 || r1 != r2 {
		t.Fatal("Split was not deterministic for the same seed")
	}
}

func TestSplitProducesDifferentStreams(t *testing.T) {
	s := NewSeed(123)
	left, right := s.Split()

	lv, _ := left.UniformIntInRange(0, 1<<30)
	rv, _ := right.UniformIntInRange(0, 1<<30)
	if lv == rv {
		t.Fatalf("left and right split streams produced the same first draw (%d) - suspicious correlation", lv)
	}
}

func TestSplitTwiceYieldsDifferentRightChildren(t *testing.T) {
	s := NewSeed(5)
	_, r1 := s.Split()
	_, r2 := r1.Split()
	if r1 == r2 {
		t.Fatal("splitting twice produced identical right children")
	}
}
