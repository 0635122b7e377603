// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fields is a set of Rating fields that were present and valid.
type Fields uint8

const (
	FieldUser Fields = 1 << iota
	FieldMovie
	// FieldValue is set when the raw rating token is present,
	// whether or not it is a number.
	FieldValue
	FieldScore
	FieldTime
)

// Has reports whether every field in want is set in f.
func (f Fields) Has(want Fields) bool {
	return f&want == want
}

// ratingFields is the number of fields in a well-formed ratings row:
// userId,movieId,rating,timestamp.
const ratingFields = 4

// A Rating is one row of the ratings table.
type Rating struct {
	// Line is the 1-based line number of the row.
	Line int

	UserID  string
	MovieID string

	// Value is the rating token exactly as it appeared in the row.
	Value string

	// Score is Value parsed as a number, ignoring surrounding white
	// space. It is meaningful only if Fields has FieldScore.
	Score float64

	// Timestamp is in Unix seconds. It is meaningful only if
	// Fields has FieldTime.
	Timestamp int64

	// Fields records which of the above are usable.
	Fields Fields
}

// ParseRatings parses the rows of a ratings table. lines[0] is the
// header and is skipped.
//
// Blank rows are dropped. Every other row yields a Rating, possibly
// with only some Fields set; each missing or invalid field is reported
// in the returned diagnostics.
func ParseRatings(lines []string) ([]Rating, []Diagnostic) {
	if len(lines) < 2 {
		return nil, nil
	}
	ratings := make([]Rating, 0, len(lines)-1)
	var diags []Diagnostic
	bad := func(line int, format string, args ...any) {
		diags = append(diags, Diagnostic{Source: "ratings", Line: line, Reason: fmt.Sprintf(format, args...)})
	}

	for i, line := range lines[1:] {
		lineNo := i + 2
		parts := split(line)
		if len(parts) == 1 && parts[0] == "" {
			bad(lineNo, "empty row")
			continue
		}
		r := Rating{Line: lineNo}
		if len(parts) < ratingFields {
			bad(lineNo, "expected %d fields, got %d", ratingFields, len(parts))
		}

		if r.UserID = parts[0]; r.UserID != "" {
			r.Fields |= FieldUser
		} else {
			bad(lineNo, "empty user id")
		}
		if len(parts) > 1 {
			if r.MovieID = parts[1]; r.MovieID != "" {
				r.Fields |= FieldMovie
			} else {
				bad(lineNo, "empty movie id")
			}
		}
		if len(parts) > 2 {
			r.Value = parts[2]
			r.Fields |= FieldValue
			score, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
			if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
				bad(lineNo, "invalid rating %q", r.Value)
			} else {
				r.Score = score
				r.Fields |= FieldScore
			}
		}
		if len(parts) > 3 {
			ts, ok := parseTimestamp(parts[3])
			if ok {
				r.Timestamp = ts
				r.Fields |= FieldTime
			} else {
				bad(lineNo, "invalid timestamp %q", parts[3])
			}
		}
		ratings = append(ratings, r)
	}
	return ratings, diags
}

// parseTimestamp accepts only unsigned decimal digits that fit in an
// int64.
func parseTimestamp(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}
