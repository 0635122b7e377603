// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratings

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/moviestats/ratingstats/stats"
	"github.com/moviestats/ratingstats/table"
)

// Summary describes the loaded tables as a whole.
type Summary struct {
	// Rows is the number of non-blank ratings rows.
	Rows int

	// Defective is the number of ratings rows, blank ones included,
	// with at least one defect.
	Defective int

	// Users and Movies are the numbers of distinct user and movie
	// ids among the ratings.
	Users  int
	Movies int

	// Titles is the number of movies in the movies table.
	Titles int

	// MeanRating and StdDevRating are the mean and population
	// standard deviation of every numeric rating.
	MeanRating   float64
	StdDevRating float64

	// MinRating and MaxRating bound the numeric ratings.
	MinRating, MaxRating float64
}

// Summary returns an overview of s.
func (s *Session) Summary() Summary {
	users := mapset.NewThreadUnsafeSet[string]()
	movies := mapset.NewThreadUnsafeSet[string]()
	var scores []float64
	for _, r := range s.ratings {
		if r.Fields.Has(table.FieldUser) {
			users.Add(r.UserID)
		}
		if r.Fields.Has(table.FieldMovie) {
			movies.Add(r.MovieID)
		}
		if r.Fields.Has(table.FieldScore) {
			scores = append(scores, r.Score)
		}
	}

	defective := mapset.NewThreadUnsafeSet[int]()
	for _, d := range s.diags {
		if d.Source == "ratings" {
			defective.Add(d.Line)
		}
	}

	sample := stats.Sample{Xs: scores}
	lo, hi := sample.Bounds()
	return Summary{
		Rows:         len(s.ratings),
		Defective:    defective.Cardinality(),
		Users:        users.Cardinality(),
		Movies:       movies.Cardinality(),
		Titles:       len(s.titles),
		MeanRating:   sample.Mean(),
		StdDevRating: sample.StdDev(),
		MinRating:    lo,
		MaxRating:    hi,
	}
}
