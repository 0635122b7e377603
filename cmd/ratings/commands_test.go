package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/moviestats/ratingstats/ratings"
)

func testSession() *ratings.Session {
	return ratings.New([]string{
		"userId,movieId,rating,timestamp",
		"1,1,5,1000000000",
		"1,2,3,1000000001",
		"2,1,4,1000000002",
	}, []string{
		"movieId,title,genres",
		"1,Movie One,Action",
		"2,Movie, Two,Drama",
	}, ratings.WithLocation(time.UTC))
}

func TestRun(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		command string
		args    []string
		want    []string
	}{
		{"years", nil, []string{"Ratings by year", "2001", "3"}},
		{"values", nil, []string{"Rating", "5", "3", "4"}},
		{"top-count", []string{"1"}, []string{"Movie One", "2"}},
		{"top-score", []string{"2", "median"}, []string{"median", "Movie One", "4.50", "Movie, Two", "3.00"}},
		{"top-score", []string{"1"}, []string{"average", "Movie One", "4.50"}},
		{"top-variance", []string{"2"}, []string{"Movie One", "0.25"}},
		{"user-counts", nil, []string{"Users by number of ratings"}},
		{"summary", nil, []string{"rating range", "3 to 5"}},
		{"user-scores", []string{"median"}, []string{"4.0", "2"}},
		{"user-variance", []string{"1"}, []string{"1.00"}},
		{"summary", nil, []string{"rating rows", "mean rating", "4.00"}},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		if err := run(&buf, testSession(), tc.command, tc.args); err != nil {
			t.Errorf("%s %v: %v", tc.command, tc.args, err)
			continue
		}
		out := buf.String()
		for _, w := range tc.want {
			if !strings.Contains(out, w) {
				t.Errorf("%s %v: output lacks %q:\n%s", tc.command, tc.args, w, out)
			}
		}
	}
}

// cells returns the trimmed cells of each body row of a rendered table.
func cells(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		var row []string
		for _, c := range strings.Split(strings.Trim(line, "|"), "|") {
			row = append(row, strings.TrimSpace(c))
		}
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	return rows
}

func TestRunUserCounts(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := run(&buf, testSession(), "user-counts", nil); err != nil {
		t.Fatal(err)
	}
	// User 2 made one rating and user 1 made two.
	want := [][]string{{"1", "1"}, {"2", "1"}}
	if got := cells(buf.String()); !reflect.DeepEqual(got, want) {
		t.Errorf("user-counts rows = %q, want %q\n%s", got, want, buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		want    error
	}{
		{"nope", nil, errUsage},
		{"top-count", nil, errUsage},
		{"top-count", []string{"ten"}, errUsage},
		{"top-variance", []string{"1", "2"}, errUsage},
		{"user-scores", []string{"average", "median"}, errUsage},
		{"top-score", []string{"3", "mode"}, ratings.ErrInvalidMetric},
		{"user-scores", []string{"mean"}, ratings.ErrInvalidMetric},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		err := run(&buf, testSession(), tc.command, tc.args)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s %v: got %v, want %v", tc.command, tc.args, err, tc.want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("RATINGS_CSV", "/data/r.csv")
	t.Setenv("MOVIES_CSV", "")
	t.Setenv("RATINGS_TZ", "UTC")
	cfg := configFromEnv()
	want := config{ratingsPath: "/data/r.csv", moviesPath: "movies.csv", zone: "UTC"}
	if cfg != want {
		t.Errorf("configFromEnv = %+v, want %+v", cfg, want)
	}
}
