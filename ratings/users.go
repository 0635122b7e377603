// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratings

import (
	"github.com/moviestats/ratingstats/stats"
	"github.com/moviestats/ratingstats/table"
)

// Users computes statistics over the ratings grouped by user.
type Users struct {
	s *Session
}

// A UserScore is a user with the variance of their ratings.
type UserScore struct {
	UserID   string
	Variance float64
}

// DistByCount returns how many users made each number of ratings, in
// ascending order of the number of ratings.
func (u *Users) DistByCount() []Bucket[int] {
	perUser := make(map[string]int)
	u.s.each(table.FieldUser, func(r *table.Rating) {
		perUser[r.UserID]++
	})
	counts := make(map[int]int)
	for _, n := range perUser {
		counts[n]++
	}
	return histogram(counts)
}

// DistByScore returns how many users have each average or median
// rating, rounded to one place, in ascending order of the rating.
func (u *Users) DistByScore(metric Metric) ([]Bucket[float64], error) {
	if err := metric.validate(); err != nil {
		return nil, err
	}
	counts := make(map[float64]int)
	for _, xs := range u.s.scoresBy(table.FieldUser, byUser) {
		counts[stats.Round(summarize(xs, metric), 1)]++
	}
	return histogram(counts), nil
}

// TopByVariance returns the n users whose ratings have the highest
// population variance, rounded to two places, in rank order. Ties are
// broken by ascending numeric user id. If n <= 0, TopByVariance
// returns nothing.
func (u *Users) TopByVariance(n int) []UserScore {
	if n <= 0 {
		return nil
	}
	groups := u.s.scoresBy(table.FieldUser, byUser)
	variances := make(map[string]float64, len(groups))
	for id, xs := range groups {
		variances[id] = stats.Round(stats.Variance(xs), 2)
	}
	top := rank(variances, n, compareNumericIDs)
	out := make([]UserScore, len(top))
	for i, r := range top {
		out[i] = UserScore{UserID: r.id, Variance: r.value}
	}
	return out
}
