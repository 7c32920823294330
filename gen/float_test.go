package gen

import (
	"testing"

	"github.com/lazytree/proptest/prng"
)

func TestUniformFloatRangeAndNoShrink(t *testing.T) {
	seed := prng.NewSeed(11)
	for i := 0; i < 200; i++ {
		var left prng.Seed
		left, seed = seed.Split()
		tr := Run(UniformFloat(), left, 0)
		if tr.Root < 0 || tr.Root >= 1 {
			t.Fatalf("root %v out of [0,1)", tr.Root)
		}
		for range tr.Children {
			t.Fatal("UniformFloat() must not shrink")
		}
	}
}

func TestFloat64RangeBounds(t *testing.T) {
	seed := prng.NewSeed(12)
	g := Float64Range(-5, 5)
	for i := 0; i < 100; i++ {
		var left prng.Seed
		left, seed = seed.Split()
		tr := Run(g, left, 0)
		if tr.Root < -5 || tr.Root > 5 {
			t.Fatalf("root %v out of [-5,5]", tr.Root)
		}
	}
}

func TestFloat64RangeShrinksTowardZero(t *testing.T) {
	seed := prng.NewSeed(13)
	tr := Run(Float64Range(-100, 100), seed, 0)
	if tr.Root == 0 {
		return
	}
	if !walkToTarget(tr, 0.0, 2048) {
		t.Fatal("expected a shrink path reaching 0")
	}
}
