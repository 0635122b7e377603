// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratings

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/moviestats/ratingstats/stats"
	"github.com/moviestats/ratingstats/table"
)

// A Bucket is one bin of a distribution: the number of items whose
// key is Key.
type Bucket[K cmp.Ordered] struct {
	Key   K
	Count int
}

// histogram returns the buckets of counts in ascending key order.
func histogram[K cmp.Ordered](counts map[K]int) []Bucket[K] {
	buckets := make([]Bucket[K], 0, len(counts))
	for k, n := range counts {
		buckets = append(buckets, Bucket[K]{Key: k, Count: n})
	}
	slices.SortFunc(buckets, func(a, b Bucket[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return buckets
}

// scoresBy groups the numeric ratings of s by key. Only ratings that
// also have the fields in want are included.
func (s *Session) scoresBy(want table.Fields, key func(*table.Rating) string) map[string][]float64 {
	groups := make(map[string][]float64)
	s.each(want|table.FieldScore, func(r *table.Rating) {
		k := key(r)
		groups[k] = append(groups[k], r.Score)
	})
	return groups
}

func byMovie(r *table.Rating) string { return r.MovieID }
func byUser(r *table.Rating) string  { return r.UserID }

// summarize reduces xs with metric. The metric must already be valid.
func summarize(xs []float64, metric Metric) float64 {
	if metric == Median {
		return stats.Median(xs)
	}
	return stats.Mean(xs)
}

// ranked is an id with the value it is ranked by.
type ranked struct {
	id    string
	value float64
}

// rank orders values by descending value, breaking ties with byID,
// and returns at most n of them.
func rank(values map[string]float64, n int, byID func(a, b string) int) []ranked {
	out := make([]ranked, 0, len(values))
	for id, v := range values {
		out = append(out, ranked{id, v})
	}
	slices.SortFunc(out, func(a, b ranked) int {
		if c := cmp.Compare(b.value, a.value); c != 0 {
			return c
		}
		return byID(a.id, b.id)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// compareNumericIDs orders ids by their integer value. Ids that are
// not integers sort after all integer ids, in string order. Integer
// ids with equal value ("7", "07") fall back to string order.
func compareNumericIDs(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
