// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table loads the comma-separated ratings and movies tables
// and parses their rows into typed records.
//
// Parsing is permissive: a malformed row never fails a load. Each
// defect becomes a Diagnostic and the row keeps whatever fields were
// usable, so an aggregation that needs only the user id can still
// count a row whose rating is garbage.
package table // import "github.com/moviestats/ratingstats/table"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Delimiter separates the fields of a row.
const Delimiter = ","

var (
	// ErrNotFound is returned by ReadLines when the table file does
	// not exist.
	ErrNotFound = errors.New("table not found")

	// ErrRead is returned by ReadLines when the table file exists
	// but cannot be read.
	ErrRead = errors.New("table read error")
)

// ReadLines returns the lines of the file at path, header included.
// Line terminators (including a trailing carriage return) are removed;
// nothing else is parsed. Lines may be of any length.
func ReadLines(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	}
}

// split trims a row and splits it into fields.
func split(line string) []string {
	return strings.Split(strings.TrimSpace(line), Delimiter)
}
