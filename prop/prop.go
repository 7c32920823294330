// Package prop drives property-based tests: it generates examples from a
// gen.Generator, runs a property against each, and — on failure — performs
// the greedy depth-first shrink search described for the core library,
// replaying the property against shrink candidates until none fail.
package prop

import (
	"flag"
	"fmt"
	"testing"
	"time"

	"github.com/lazytree/proptest/gen"
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation.
	// If zero, a random seed will be generated based on the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxShrink is the maximum number of shrink steps to perform once a
	// failing example has been found.
	MaxShrink int

	// StartSize is the generator size passed to the first example; it grows by
	// one on every subsequent example, saturating at 100, mirroring
	// quick.Stream's size progression.
	StartSize int

	// StopOnFirstFailure determines whether ForAll stops after the first
	// failing example (after shrinking it) or keeps testing the remaining
	// examples.
	StopOnFirstFailure bool
}

var (
	// flagSeed sets the random seed for test case generation.
	// Default: 0 (random seed based on current time).
	flagSeed = flag.Int64("proptest.seed", 0, "Random seed for test case generation")

	// flagExamples sets the number of test cases to generate.
	// Default: 100.
	flagExamples = flag.Int("proptest.examples", 100, "Number of test cases to generate")

	// flagMaxShrink sets the maximum number of shrink steps.
	// Default: 400.
	flagMaxShrink = flag.Int("proptest.maxshrink", 400, "Maximum number of shrink steps")

	// flagStartSize sets the generator size of the first example.
	// Default: 1.
	flagStartSize = flag.Int("proptest.startsize", 1, "Generator size of the first example")
)

// Default returns a Config with default values based on command-line flags.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		Examples:           *flagExamples,
		MaxShrink:          *flagMaxShrink,
		StartSize:          *flagStartSize,
		StopOnFirstFailure: true,
	}
}

// effectiveSeed returns the effective seed to use for the run. If the
// configured seed is zero, it is derived from the current time so every
// unseeded run explores different examples.
func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// ForAll generates cfg.Examples values from g and runs body against each. A
// failing example is shrunk via the greedy depth-first walk described for
// the shrink driver: try each child's root in turn, recurse into the first
// one that also fails, stop at the first level where every child passes.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Integer())(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.effectiveSeed()
		s := prng.NewSeed(seed)

		t.Logf("[proptest] seed=%d examples=%d maxshrink=%d startsize=%d",
			seed, cfg.Examples, cfg.MaxShrink, cfg.StartSize)

		size := cfg.StartSize
		for i := 0; i < cfg.Examples; i++ {
			var left prng.Seed
			left, s = s.Split()

			tr := gen.Run(g, left, size)
			name := fmt.Sprintf("ex#%d", i+1)

			passed := t.Run(name, func(st *testing.T) { body(st, tr.Root) })
			if !passed {
				min, steps := shrink(t, name, tr, body, cfg.MaxShrink)
				full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
				msg := fmt.Sprintf("[proptest] property failed; seed=%d; examples_run=%d; shrink_steps=%d\n"+
					"counterexample (min): %#v\nreplay: go test -run '%s' -proptest.seed=%d",
					seed, i+1, steps, min, full, seed)

				if cfg.StopOnFirstFailure {
					t.Fatal(msg)
				}
				t.Error(msg)
			}

			if size < 100 {
				size++
			}
		}
	}
}

// shrink performs the greedy depth-first shrink search over tr: for each
// child, if the property still fails on its root, recurse into that child
// and abandon the remaining siblings; otherwise try the next sibling. It
// stops at the first tree whose children all pass (or which has none),
// returning its root as the minimized counterexample.
func shrink[T any](t *testing.T, name string, tr rtree.Tree[T], body func(*testing.T, T), maxSteps int) (T, int) {
	current := tr
	steps := 0
	for steps < maxSteps {
		found := false
		for c := range current.Children {
			if steps >= maxSteps {
				break
			}
			steps++
			sname := fmt.Sprintf("%s/shrink#%d", name, steps)
			stillFails := !t.Run(sname, func(st *testing.T) { body(st, c.Root) })
			if stillFails {
				current = c
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return current.Root, steps
}
