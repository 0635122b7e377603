// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratings

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/moviestats/ratingstats/stats"
	"github.com/moviestats/ratingstats/table"
)

// Movies computes statistics over the ratings grouped by movie.
type Movies struct {
	s *Session
}

// A MovieCount is a movie with its number of ratings.
type MovieCount struct {
	MovieID string
	Title   string
	Count   int
}

// A MovieScore is a movie with a per-movie statistic of its ratings.
type MovieScore struct {
	MovieID string
	Title   string
	Score   float64
}

// maxUnix is the last second of year 9999, plus the widest zone
// offset. Timestamps past it cannot name a four-digit year anywhere.
const maxUnix = 253402300799 + 14*60*60

// DistByYear returns the number of ratings made in each calendar year,
// in ascending year order. Years are taken in the session's location.
//
// Ratings without a valid timestamp are not counted. Timestamps whose
// year falls outside 1 to 9999 are reported and not counted.
func (m *Movies) DistByYear() []Bucket[int] {
	counts := make(map[int]int)
	m.s.each(table.FieldTime, func(r *table.Rating) {
		year := 0
		if r.Timestamp <= maxUnix {
			year = time.Unix(r.Timestamp, 0).In(m.s.loc).Year()
		}
		if year < 1 || year > 9999 {
			m.s.notice("ratings", r.Line, "timestamp %d out of range", r.Timestamp)
			return
		}
		counts[year]++
	})
	return histogram(counts)
}

// DistByRating returns the number of ratings per rating value, in
// ascending string order of the value. Values are grouped by their
// text as written, so "4" and "4.0" are different buckets and
// non-numeric values are counted too.
func (m *Movies) DistByRating() []Bucket[string] {
	counts := make(map[string]int)
	m.s.each(table.FieldValue, func(r *table.Rating) {
		counts[r.Value]++
	})
	return histogram(counts)
}

// TopByCount returns the n movies with the most ratings, most first.
// Ties are broken by ascending movie id.
//
// Only movies with a known title are ranked; the others are reported.
// If n <= 0, TopByCount returns nothing.
func (m *Movies) TopByCount(n int) []MovieCount {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	m.s.each(table.FieldMovie, func(r *table.Rating) {
		counts[r.MovieID]++
	})

	var top []MovieCount
	for id, c := range counts {
		if title, ok := m.s.titles.Lookup(id); ok {
			top = append(top, MovieCount{MovieID: id, Title: title, Count: c})
		}
	}
	m.reportUnresolved(counts)

	slices.SortFunc(top, func(a, b MovieCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.MovieID, b.MovieID)
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// TopByScore returns the n movies with the highest average or median
// rating, rounded to two places. Ties are broken by ascending movie id.
//
// The ranking is taken before titles are resolved, so a ranked movie
// without a known title is reported and dropped, and fewer than n
// movies may be returned. If n <= 0, TopByScore returns nothing.
func (m *Movies) TopByScore(n int, metric Metric) ([]MovieScore, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := metric.validate(); err != nil {
		return nil, err
	}
	groups := m.s.scoresBy(table.FieldMovie, byMovie)
	scores := make(map[string]float64, len(groups))
	for id, xs := range groups {
		scores[id] = stats.Round(summarize(xs, metric), 2)
	}
	return m.titled(rank(scores, n, strings.Compare)), nil
}

// TopByVariance returns the n movies whose ratings have the highest
// population variance, rounded to two places. Ties are broken by
// ascending movie id. Like TopByScore, movies without a known title
// are reported and dropped after ranking.
func (m *Movies) TopByVariance(n int) []MovieScore {
	if n <= 0 {
		return nil
	}
	groups := m.s.scoresBy(table.FieldMovie, byMovie)
	variances := make(map[string]float64, len(groups))
	for id, xs := range groups {
		variances[id] = stats.Round(stats.Variance(xs), 2)
	}
	return m.titled(rank(variances, n, strings.Compare))
}

func (m *Movies) titled(top []ranked) []MovieScore {
	out := make([]MovieScore, 0, len(top))
	for _, r := range top {
		title, ok := m.s.titles.Lookup(r.id)
		if !ok {
			m.s.notice("movies", 0, "no title for movie %s", r.id)
			continue
		}
		out = append(out, MovieScore{MovieID: r.id, Title: title, Score: r.value})
	}
	return out
}

// reportUnresolved reports, in id order, each movie in counts that has
// no title.
func (m *Movies) reportUnresolved(counts map[string]int) {
	var missing []string
	for id := range counts {
		if _, ok := m.s.titles.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)
	for _, id := range missing {
		m.s.notice("movies", 0, "no title for movie %s", id)
	}
}
