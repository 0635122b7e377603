package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/moviestats/ratingstats/ratings"
)

var errUsage = errors.New("usage error")

// run executes command with args against s, writing its result to w.
func run(w io.Writer, s *ratings.Session, command string, args []string) error {
	switch command {
	case "years":
		heading(w, "Ratings by year")
		return render(w, []string{"Year", "Ratings"}, buckets(s.Movies().DistByYear(), strconv.Itoa))

	case "values":
		heading(w, "Ratings by value")
		return render(w, []string{"Rating", "Ratings"}, buckets(s.Movies().DistByRating(), func(v string) string { return v }))

	case "top-count":
		n, err := topN(args, 1)
		if err != nil {
			return err
		}
		var rows [][]string
		for i, m := range s.Movies().TopByCount(n) {
			rows = append(rows, []string{strconv.Itoa(i + 1), m.Title, strconv.Itoa(m.Count)})
		}
		heading(w, "Most rated movies")
		return render(w, []string{"Rank", "Title", "Ratings"}, rows)

	case "top-score":
		n, err := topN(args, 2)
		if err != nil {
			return err
		}
		metric, err := metricArg(args[1:])
		if err != nil {
			return err
		}
		top, err := s.Movies().TopByScore(n, metric)
		if err != nil {
			return err
		}
		heading(w, fmt.Sprintf("Best rated movies by %s", metric))
		return render(w, []string{"Rank", "Title", string(metric)}, movieScores(top))

	case "top-variance":
		n, err := topN(args, 1)
		if err != nil {
			return err
		}
		heading(w, "Most controversial movies")
		return render(w, []string{"Rank", "Title", "Variance"}, movieScores(s.Movies().TopByVariance(n)))

	case "user-counts":
		heading(w, "Users by number of ratings")
		return render(w, []string{"Ratings", "Users"}, buckets(s.Users().DistByCount(), strconv.Itoa))

	case "user-scores":
		if len(args) > 1 {
			return fmt.Errorf("%w: user-scores takes at most one argument", errUsage)
		}
		metric, err := metricArg(args)
		if err != nil {
			return err
		}
		dist, err := s.Users().DistByScore(metric)
		if err != nil {
			return err
		}
		heading(w, fmt.Sprintf("Users by %s rating", metric))
		return render(w, []string{string(metric), "Users"}, buckets(dist, func(v float64) string {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}))

	case "user-variance":
		n, err := topN(args, 1)
		if err != nil {
			return err
		}
		var rows [][]string
		for i, u := range s.Users().TopByVariance(n) {
			rows = append(rows, []string{strconv.Itoa(i + 1), u.UserID, strconv.FormatFloat(u.Variance, 'f', 2, 64)})
		}
		heading(w, "Users with the most varied ratings")
		return render(w, []string{"Rank", "User", "Variance"}, rows)

	case "summary":
		sum := s.Summary()
		heading(w, "Summary")
		return render(w, []string{"Statistic", "Value"}, [][]string{
			{"rating rows", strconv.Itoa(sum.Rows)},
			{"defective rows", strconv.Itoa(sum.Defective)},
			{"users", strconv.Itoa(sum.Users)},
			{"movies rated", strconv.Itoa(sum.Movies)},
			{"movie titles", strconv.Itoa(sum.Titles)},
			{"mean rating", strconv.FormatFloat(sum.MeanRating, 'f', 2, 64)},
			{"rating std dev", strconv.FormatFloat(sum.StdDevRating, 'f', 2, 64)},
			{"rating range", strconv.FormatFloat(sum.MinRating, 'f', -1, 64) + " to " + strconv.FormatFloat(sum.MaxRating, 'f', -1, 64)},
		})
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

// topN parses the N argument of a top-N command that takes at most
// max arguments.
func topN(args []string, max int) (int, error) {
	if len(args) == 0 || len(args) > max {
		return 0, fmt.Errorf("%w: want N and at most %d argument(s)", errUsage, max)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: N must be an integer, got %q", errUsage, args[0])
	}
	return n, nil
}

// metricArg returns the metric named by args[0], or the average if
// args is empty.
func metricArg(args []string) (ratings.Metric, error) {
	if len(args) == 0 {
		return ratings.Average, nil
	}
	return ratings.ParseMetric(args[0])
}

func buckets[K int | float64 | string](bs []ratings.Bucket[K], format func(K) string) [][]string {
	rows := make([][]string, len(bs))
	for i, b := range bs {
		rows[i] = []string{format(b.Key), strconv.Itoa(b.Count)}
	}
	return rows
}

func movieScores(top []ratings.MovieScore) [][]string {
	rows := make([][]string, len(top))
	for i, m := range top {
		rows[i] = []string{strconv.Itoa(i + 1), m.Title, strconv.FormatFloat(m.Score, 'f', 2, 64)}
	}
	return rows
}

func heading(w io.Writer, title string) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, title)
}

func render(w io.Writer, header []string, rows [][]string) error {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetHeader(header)
	t.AppendBulk(rows)
	t.Render()
	return nil
}
