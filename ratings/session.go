// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratings computes distributions and rankings over a
// MovieLens-style ratings table, with movie titles resolved from a
// movies table.
//
// A Session is opened once over both tables and is read-only
// afterwards. Movie-centred analytics hang off Session.Movies and
// user-centred analytics off Session.Users. Each operation makes its
// own pass over the parsed rows.
package ratings // import "github.com/moviestats/ratingstats/ratings"

import (
	"errors"
	"fmt"
	"time"

	"github.com/moviestats/ratingstats/table"
)

// ErrInvalidMetric is returned by operations that take a Metric when
// the metric is not one of Average or Median.
var ErrInvalidMetric = errors.New("invalid metric")

// A Metric selects how a group of ratings is summarized.
type Metric string

const (
	Average Metric = "average"
	Median  Metric = "median"
)

// ParseMetric returns the Metric named s.
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if err := m.validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Metric) validate() error {
	switch m {
	case Average, Median:
		return nil
	}
	return fmt.Errorf("%w %q: want %q or %q", ErrInvalidMetric, string(m), Average, Median)
}

// A Session holds a parsed ratings table and title index.
type Session struct {
	ratings []table.Rating
	titles  table.Titles
	diags   []table.Diagnostic

	loc    *time.Location
	report table.Reporter
}

// An Option configures a Session.
type Option func(*Session)

// WithLocation sets the time zone used to derive calendar years from
// timestamps. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Session) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithReporter sets the Reporter that receives row diagnostics, both
// those found while parsing and those found by later operations. The
// default discards them.
func WithReporter(r table.Reporter) Option {
	return func(s *Session) {
		if r != nil {
			s.report = r
		}
	}
}

// Open reads and parses the ratings table at ratingsPath and the
// movies table at moviesPath.
//
// moviesPath may be empty, in which case no title can be resolved and
// operations that rank movies return nothing. A table that does not
// exist or cannot be read fails Open with an error matching
// table.ErrNotFound or table.ErrRead. Malformed rows never do.
func Open(ratingsPath, moviesPath string, opts ...Option) (*Session, error) {
	ratingLines, err := table.ReadLines(ratingsPath)
	if err != nil {
		return nil, fmt.Errorf("loading ratings: %w", err)
	}
	var movieLines []string
	if moviesPath != "" {
		movieLines, err = table.ReadLines(moviesPath)
		if err != nil {
			return nil, fmt.Errorf("loading movies: %w", err)
		}
	}
	return New(ratingLines, movieLines, opts...), nil
}

// New returns a Session over the given raw table lines. The first
// line of each table is its header.
func New(ratingLines, movieLines []string, opts ...Option) *Session {
	s := &Session{loc: time.Local, report: table.Discard}
	for _, opt := range opts {
		opt(s)
	}

	ratings, rdiags := table.ParseRatings(ratingLines)
	titles, mdiags := table.ParseMovies(movieLines)
	s.ratings = ratings
	s.titles = titles
	for _, d := range append(rdiags, mdiags...) {
		s.warn(d)
	}
	return s
}

// Diagnostics returns the row defects found while parsing the tables.
func (s *Session) Diagnostics() []table.Diagnostic {
	return append([]table.Diagnostic(nil), s.diags...)
}

// Movies returns the movie analytics of s.
func (s *Session) Movies() *Movies {
	return &Movies{s: s}
}

// Users returns the user analytics of s.
func (s *Session) Users() *Users {
	return &Users{s: s}
}

func (s *Session) warn(d table.Diagnostic) {
	s.diags = append(s.diags, d)
	s.report.Report(d)
}

// notice reports a defect found by an operation. These are not kept
// on the session: the session is read-only once built.
func (s *Session) notice(source string, line int, format string, args ...any) {
	s.report.Report(table.Diagnostic{Source: source, Line: line, Reason: fmt.Sprintf(format, args...)})
}

// each calls f for every rating that has all of the fields in want.
func (s *Session) each(want table.Fields, f func(r *table.Rating)) {
	for i := range s.ratings {
		if r := &s.ratings[i]; r.Fields.Has(want) {
			f(r)
		}
	}
}
