// Package report turns catalog queries into printable tables.
//
// Each report calls one catalog operation and shapes its rows for display:
// column names, rounding and relabelling happen here so that the catalog keeps
// returning full-precision values.
package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/table"
)

// ErrUnknownReport is returned for a report ID that is not in the catalog.
var ErrUnknownReport = errors.New("unknown report")

// Report is one titled query with its presentation.
type Report struct {
	ID    string
	Title string
	build func(ctx context.Context, src catalog.Source, opts catalog.Options) (table.Table, error)
}

// Build runs the report's query against src and shapes the result.
func (r Report) Build(ctx context.Context, src catalog.Source, opts catalog.Options) (table.Table, error) {
	t, err := r.build(ctx, src, opts.Normalize())
	if err != nil {
		return table.Table{}, err
	}
	t.Title = r.Title
	return t, nil
}

// Reports returns Q1 through Q9 in order. Titles that mention a limit follow
// opts.
func Reports(opts catalog.Options) []Report {
	opts = opts.Normalize()
	return []Report{
		{
			ID:    "q1",
			Title: fmt.Sprintf("Q1 Top %d Meetings by Speaker Count", opts.SpeakerLimit),
			build: topSpeakerMeetings,
		},
		{
			ID:    "q2",
			Title: "Q2 Avg Meeting Length by City",
			build: avgTranscriptLength,
		},
		{
			ID:    "q3",
			Title: "Q3 Avg Speakers per City",
			build: avgSpeakers,
		},
		{
			ID:    "q4",
			Title: fmt.Sprintf("Q4 %s Mentions", mentionsLabel(opts.TopicKeywords)),
			build: topicMentions,
		},
		{
			ID:    "q5",
			Title: "Q5 Longest Meeting per City",
			build: longestMeetingPerCity,
		},
		{
			ID:    "q6",
			Title: "Q6 City Meeting Counts",
			build: meetingCount,
		},
		{
			// Same query as Q2.
			ID:    "q7",
			Title: "Q7 Average Transcript Length per City",
			build: avgTranscriptLength,
		},
		{
			ID:    "q8",
			Title: "Q8 Meeting Rank by Transcript Length",
			build: rankMeetings,
		},
		{
			ID:    "q9",
			Title: fmt.Sprintf("Q9 Top %d Longest Meetings", opts.LongestLimit),
			build: topLongestMeetings,
		},
	}
}

// Lookup finds a report by ID, ignoring case.
func Lookup(opts catalog.Options, id string) (Report, error) {
	for _, r := range Reports(opts) {
		if strings.EqualFold(r.ID, strings.TrimSpace(id)) {
			return r, nil
		}
	}
	return Report{}, fmt.Errorf("%w: %q", ErrUnknownReport, id)
}

// Select returns the reports named by ids in catalog order, or all reports
// when ids is empty.
func Select(opts catalog.Options, ids ...string) ([]Report, error) {
	all := Reports(opts)
	if len(ids) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		r, err := Lookup(opts, id)
		if err != nil {
			return nil, err
		}
		want[r.ID] = true
	}

	var out []Report
	for _, r := range all {
		if want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// Run builds and prints the selected reports, separated by blank lines. The
// first query error is returned as is and stops the run.
func Run(ctx context.Context, src catalog.Source, opts catalog.Options, p *table.Printer, ids ...string) error {
	reports, err := Select(opts, ids...)
	if err != nil {
		return err
	}

	for i, r := range reports {
		t, err := r.Build(ctx, src, opts)
		if err != nil {
			return err
		}
		if i > 0 {
			p.Blank()
		}
		p.Print(t)
	}
	return nil
}

// RoundLength rounds an average word count to a whole number, half to even.
func RoundLength(avg float64) int {
	return int(math.RoundToEven(avg))
}

// FormatSpeakers renders an average speaker count with two decimals.
func FormatSpeakers(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 2, 64)
}

func mentionsLabel(keywords []string) string {
	if len(keywords) == 0 {
		return "Topic"
	}
	parts := make([]string, len(keywords))
	for i, k := range keywords {
		r := []rune(k)
		parts[i] = strings.ToUpper(string(r[:1])) + string(r[1:])
	}
	return strings.Join(parts, "/")
}
