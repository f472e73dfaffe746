// SPDX-License-Identifier: MIT

package tridiag

import (
	"math"
	"sort"
)

// ErrorSample is the eigenvalue error after one sweep.
type ErrorSample struct {
	Iteration int
	Mean      float64 // mean |λ_sorted[i] − ref_sorted[i]|
	Max       float64 // max  |λ_sorted[i] − ref_sorted[i]|
}

// ErrorTracker records how fast the diagonal approaches a set of reference
// eigenvalues, one ErrorSample per sweep. Both sides are compared sorted in
// descending order, so the deflation order does not matter.
//
// An ErrorTracker is not safe for concurrent use; attach one tracker to one
// QREigen/Decompose call.
type ErrorTracker struct {
	reference []float64
	scratch   []float64
	samples   []ErrorSample
	skipped   int
}

// NewErrorTracker copies reference and sorts it descending.
func NewErrorTracker(reference []float64) *ErrorTracker {
	ref := append([]float64(nil), reference...)
	sort.Sort(sort.Reverse(sort.Float64Slice(ref)))

	return &ErrorTracker{reference: ref, scratch: make([]float64, len(ref))}
}

// Hook returns the sweep hook to pass to WithSweepHook.
func (t *ErrorTracker) Hook() func(Sweep) {
	return t.observe
}

func (t *ErrorTracker) observe(sw Sweep) {
	if len(sw.Diagonal) != len(t.reference) {
		t.skipped++
		return
	}
	copy(t.scratch, sw.Diagonal)
	sort.Sort(sort.Reverse(sort.Float64Slice(t.scratch)))

	var (
		i         int
		diff, sum float64
		worst     float64
	)
	for i = range t.scratch {
		diff = math.Abs(t.scratch[i] - t.reference[i])
		sum += diff
		worst = math.Max(worst, diff)
	}
	mean := 0.0
	if len(t.scratch) > 0 {
		mean = sum / float64(len(t.scratch))
	}
	t.samples = append(t.samples, ErrorSample{Iteration: sw.Iteration, Mean: mean, Max: worst})
}

// Samples returns the recorded samples in sweep order.
func (t *ErrorTracker) Samples() []ErrorSample {
	return append([]ErrorSample(nil), t.samples...)
}

// Skipped reports sweeps ignored because their size differed from the reference.
func (t *ErrorTracker) Skipped() int { return t.skipped }
