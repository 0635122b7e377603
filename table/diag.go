// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "fmt"

// A Diagnostic describes a row-level defect: a row, or a value derived
// from it, that was skipped.
type Diagnostic struct {
	// Source names the table the row came from, such as "ratings".
	Source string

	// Line is the 1-based line number of the row. The header is
	// line 1. Line is 0 for defects not tied to a single row.
	Line int

	// Reason says what was wrong.
	Reason string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Source, d.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", d.Source, d.Line, d.Reason)
}

// A Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts an ordinary function to a Reporter.
type ReporterFunc func(Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard is a Reporter that drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})
