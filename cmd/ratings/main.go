// ratings reports distributions and rankings over a MovieLens-style
// ratings table, resolving movie titles from a movies table.
//
// Usage:
//
//	ratings [flags] command [args]
//
// Row defects are reported on stderr and never stop a command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/moviestats/ratingstats/ratings"
	"github.com/moviestats/ratingstats/table"
)

const usageText = `usage: ratings [flags] command [args]

Commands:
  years                          ratings per calendar year
  values                         ratings per rating value
  top-count N                    N most rated movies
  top-score N [average|median]   N best rated movies
  top-variance N                 N most controversial movies
  user-counts                    users per number of ratings
  user-scores [average|median]   users per average or median rating
  user-variance N                N users with the most varied ratings
  summary                        overview of both tables

Flags:
`

func main() {
	// A missing .env is not an error: flags and the environment
	// still apply.
	_ = godotenv.Load()
	cfg := configFromEnv()

	flag.StringVar(&cfg.ratingsPath, "ratings", cfg.ratingsPath, "ratings table `path` ($RATINGS_CSV)")
	flag.StringVar(&cfg.moviesPath, "movies", cfg.moviesPath, "movies table `path` ($MOVIES_CSV)")
	flag.StringVar(&cfg.zone, "tz", cfg.zone, "time `zone` for calendar years ($RATINGS_TZ)")
	flag.BoolVar(&cfg.quiet, "q", false, "do not report row defects")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	loc, err := time.LoadLocation(cfg.zone)
	if err != nil {
		fail(err)
	}
	var rep table.Reporter = table.Discard
	if !cfg.quiet {
		rep = stderrReporter()
	}

	s, err := ratings.Open(cfg.ratingsPath, cfg.moviesPath, ratings.WithLocation(loc), ratings.WithReporter(rep))
	if err != nil {
		fail(err)
	}
	if err := run(os.Stdout, s, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		fail(err)
	}
}

type config struct {
	ratingsPath string
	moviesPath  string
	zone        string
	quiet       bool
}

func configFromEnv() config {
	return config{
		ratingsPath: getenv("RATINGS_CSV", "ratings.csv"),
		moviesPath:  getenv("MOVIES_CSV", "movies.csv"),
		zone:        getenv("RATINGS_TZ", "Local"),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func stderrReporter() table.Reporter {
	warn := color.New(color.FgYellow).FprintfFunc()
	return table.ReporterFunc(func(d table.Diagnostic) {
		warn(os.Stderr, "warning: %s\n", d)
	})
}

func fail(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "ratings: %v\n", err)
	os.Exit(1)
}
