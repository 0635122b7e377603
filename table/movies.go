// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strings"
)

// Titles maps a movie id to its title.
type Titles map[string]string

// Lookup returns the title of movie id and whether it is known.
func (t Titles) Lookup(id string) (string, bool) {
	title, ok := t[id]
	return title, ok && title != ""
}

// movieFields is the minimum number of fields in a movies row:
// movieId,title,genres. The title may itself contain the delimiter.
const movieFields = 3

// ParseMovies parses the rows of a movies table into a title index.
// lines[0] is the header and is skipped.
//
// The title is every field between the id and the trailing genres
// field, rejoined with the delimiter. Genres are discarded. If an id
// appears more than once, the last row wins.
func ParseMovies(lines []string) (Titles, []Diagnostic) {
	titles := make(Titles)
	if len(lines) < 2 {
		return titles, nil
	}
	var diags []Diagnostic
	bad := func(line int, format string, args ...any) {
		diags = append(diags, Diagnostic{Source: "movies", Line: line, Reason: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]int)
	for i, line := range lines[1:] {
		lineNo := i + 2
		parts := split(line)
		if len(parts) < movieFields {
			bad(lineNo, "expected at least %d fields, got %d", movieFields, len(parts))
			continue
		}
		id := parts[0]
		title := strings.Join(parts[1:len(parts)-1], Delimiter)
		switch {
		case id == "":
			bad(lineNo, "empty movie id")
			continue
		case title == "":
			bad(lineNo, "empty title for movie %s", id)
			continue
		}
		if prev, ok := seen[id]; ok {
			bad(lineNo, "movie %s already defined on line %d", id, prev)
		}
		seen[id] = lineNo
		titles[id] = title
	}
	return titles, diags
}
