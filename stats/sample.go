// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of unweighted observations.
//
// The zero Sample is empty. Every statistic of an empty Sample is 0,
// which is what the ratings aggregations expect for a group with no
// usable values.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return 0
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the population variance of the Sample: the mean of
// the squared deviations from the mean, with no N-1 correction.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return 0
	}
	return stat.PopVariance(s.Xs, nil)
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the middle value of the Sample, or the mean of the
// two middle values if the Sample has an even number of values.
//
// If the Sample is not sorted, Median sorts a copy, so the order of
// s.Xs is left untouched.
func (s Sample) Median() float64 {
	n := len(s.Xs)
	if n == 0 {
		return 0
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	mid := n / 2
	if n%2 == 1 {
		return s.Xs[mid]
	}
	return (s.Xs[mid-1] + s.Xs[mid]) / 2
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns 0, 0.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return 0, 0
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Mean returns the arithmetic mean of xs, or 0 if xs is empty.
func Mean(xs []float64) float64 {
	return Sample{Xs: xs}.Mean()
}

// Median returns the median of xs, or 0 if xs is empty. The order of
// xs is not modified.
func Median(xs []float64) float64 {
	return Sample{Xs: xs}.Median()
}

// Variance returns the population variance of xs, or 0 if xs is empty.
func Variance(xs []float64) float64 {
	return Sample{Xs: xs}.Variance()
}
