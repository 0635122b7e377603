// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.csv")
	data := "userId,movieId,rating,timestamp\r\nu1,m1,5,1000000000\r\nu2,m1,4,1000000002\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"userId,movieId,rating,timestamp",
		"u1,m1,5,1000000000",
		"u2,m1,4,1000000002",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines = %q, want %q", got, want)
	}
}

func TestReadLinesLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.csv")
	long := "1,1,4," + strings.Repeat("9", 2<<20)
	data := "userId,movieId,rating,timestamp\n1,2,3,100\n" + long + "\n2,1,5,100"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 || lines[2] != long || lines[3] != "2,1,5,100" {
		t.Fatalf("ReadLines returned %d lines", len(lines))
	}

	// The oversized timestamp is a row defect, not a load failure.
	ratings, diags := ParseRatings(lines)
	if len(ratings) != 3 || ratings[1].Fields.Has(FieldTime) || !ratings[1].Fields.Has(FieldScore) {
		t.Errorf("ParseRatings kept %d rows, long row fields %b", len(ratings), ratings[1].Fields)
	}
	if len(diags) != 1 || diags[0].Line != 3 {
		t.Errorf("diagnostics = %v, want one on line 3", diags)
	}
}

func TestReadLinesNotFound(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if errors.Is(err, ErrRead) {
		t.Errorf("not-found error also matches ErrRead: %v", err)
	}
}

func TestReadLinesReadError(t *testing.T) {
	// A directory exists but cannot be read as lines.
	_, err := ReadLines(t.TempDir())
	if !errors.Is(err, ErrRead) {
		t.Fatalf("want ErrRead, got %v", err)
	}
}

func TestParseRatings(t *testing.T) {
	lines := []string{
		"userId,movieId,rating,timestamp",
		"u1,m1,5,1000000000",
		"  u1,m2,3.5,1000000001  ",
		"",
		"u2,m1",
		"u3,m3,abc,1000000003",
		"u4,m4,4,-12",
		",m5,2,1000000005",
	}
	got, diags := ParseRatings(lines)
	want := []Rating{
		{Line: 2, UserID: "u1", MovieID: "m1", Value: "5", Score: 5, Timestamp: 1000000000,
			Fields: FieldUser | FieldMovie | FieldValue | FieldScore | FieldTime},
		{Line: 3, UserID: "u1", MovieID: "m2", Value: "3.5", Score: 3.5, Timestamp: 1000000001,
			Fields: FieldUser | FieldMovie | FieldValue | FieldScore | FieldTime},
		{Line: 5, UserID: "u2", MovieID: "m1", Fields: FieldUser | FieldMovie},
		{Line: 6, UserID: "u3", MovieID: "m3", Value: "abc", Timestamp: 1000000003,
			Fields: FieldUser | FieldMovie | FieldValue | FieldTime},
		{Line: 7, UserID: "u4", MovieID: "m4", Value: "4", Score: 4,
			Fields: FieldUser | FieldMovie | FieldValue | FieldScore},
		{Line: 8, MovieID: "m5", Value: "2", Score: 2, Timestamp: 1000000005,
			Fields: FieldMovie | FieldValue | FieldScore | FieldTime},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRatings:\n got %+v\nwant %+v", got, want)
	}

	wantLines := []int{4, 5, 6, 7, 8}
	var gotLines []int
	for _, d := range diags {
		if d.Source != "ratings" {
			t.Errorf("diagnostic source = %q", d.Source)
		}
		gotLines = append(gotLines, d.Line)
	}
	if !reflect.DeepEqual(gotLines, wantLines) {
		t.Errorf("diagnostic lines = %v, want %v (%v)", gotLines, wantLines, diags)
	}
}

func TestParseRatingsSpacedScore(t *testing.T) {
	got, diags := ParseRatings([]string{
		"userId,movieId,rating,timestamp",
		"1,1, 4.5,100",
		"1,1,3 ,100",
	})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics %v", diags)
	}
	if got[0].Score != 4.5 || got[0].Value != " 4.5" || !got[0].Fields.Has(FieldScore) {
		t.Errorf("row 2 = %+v, want score 4.5 with raw value kept", got[0])
	}
	if got[1].Score != 3 || got[1].Value != "3 " {
		t.Errorf("row 3 = %+v, want score 3", got[1])
	}
}

func TestParseRatingsHeaderOnly(t *testing.T) {
	got, diags := ParseRatings([]string{"userId,movieId,rating,timestamp"})
	if len(got) != 0 || len(diags) != 0 {
		t.Errorf("ParseRatings(header) = %v, %v", got, diags)
	}
}

func TestParseMovies(t *testing.T) {
	lines := []string{
		"movieId,title,genres",
		"m1,Movie One,Action",
		`m2,"American President, The (1995)",Comedy|Drama|Romance`,
		"m3,Drama",
		",No Id,Drama",
		"m4,,Drama",
		"m1,Movie One Again,Action",
	}
	got, diags := ParseMovies(lines)
	want := Titles{
		"m1": "Movie One Again",
		"m2": `"American President, The (1995)"`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMovies = %q, want %q", got, want)
	}
	if len(diags) != 4 {
		t.Fatalf("want 4 diagnostics, got %v", diags)
	}
	if last := diags[3]; last.Line != 7 || !strings.Contains(last.Reason, "line 2") {
		t.Errorf("duplicate diagnostic = %v", last)
	}
	if _, ok := got.Lookup("m3"); ok {
		t.Error("Lookup found a movie with no genres field")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Source: "ratings", Line: 7, Reason: "empty row"}
	if got := d.String(); got != "ratings:7: empty row" {
		t.Errorf("String = %q", got)
	}
	d.Line = 0
	if got := d.String(); got != "ratings: empty row" {
		t.Errorf("String = %q", got)
	}
}

func TestFieldsHas(t *testing.T) {
	f := FieldUser | FieldScore
	if !f.Has(FieldUser) || !f.Has(FieldUser|FieldScore) {
		t.Errorf("%b should have user and score", f)
	}
	if f.Has(FieldUser | FieldMovie) {
		t.Errorf("%b should not have movie", f)
	}
}
