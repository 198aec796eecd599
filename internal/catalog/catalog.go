// Package catalog defines the read-only queries run against a store of
// meeting-transcript records.
//
// Grouping, averaging, ranking and windowing happen inside the store: the SQL
// implementation lives in internal/db and the aggregation-pipeline one in
// internal/docstore. Operations never mutate records and return an empty
// slice, not an error, for an empty collection.
package catalog

import (
	"context"
	"strings"
)

// Default limits and topic keywords.
const (
	DefaultSpeakerLimit = 5
	DefaultRankLimit    = 5
	DefaultLongestLimit = 10
)

// DefaultTopicKeywords are the topics counted by TopicMentionsByCity.
var DefaultTopicKeywords = []string{"budget", "housing"}

// Source is a queryable transcript collection.
type Source interface {
	// TopSpeakerMeetings returns the meetings with the most speakers,
	// speaker count descending.
	TopSpeakerMeetings(ctx context.Context, limit int) ([]SpeakerMeeting, error)

	// AvgTranscriptLengthByCity returns the mean transcript word count per city.
	AvgTranscriptLengthByCity(ctx context.Context) ([]CityAverage, error)

	// AvgSpeakersByCity returns the mean speaker count per city.
	AvgSpeakersByCity(ctx context.Context) ([]CityAverage, error)

	// TopicMentionsByCity counts, per city, the meetings whose transcript
	// contains any of the keywords (case-insensitive substring match).
	TopicMentionsByCity(ctx context.Context, keywords []string) ([]CityCount, error)

	// LongestMeetingPerCity returns each city's meeting with the highest
	// word count. Ties go to the smallest meeting ID.
	LongestMeetingPerCity(ctx context.Context) ([]LongestMeeting, error)

	// MeetingCountByCity returns the number of meetings per city, count
	// descending.
	MeetingCountByCity(ctx context.Context) ([]CityCount, error)

	// RankMeetingsByLength ranks meetings by word count descending using
	// competition ranking and returns the first limit rows.
	RankMeetingsByLength(ctx context.Context, limit int) ([]RankedMeeting, error)

	// TopLongestMeetings returns the meetings with the highest word count.
	TopLongestMeetings(ctx context.Context, limit int) ([]MeetingLength, error)
}

// Options tunes the parameterised queries.
type Options struct {
	SpeakerLimit  int      `yaml:"speaker_limit"`
	RankLimit     int      `yaml:"rank_limit"`
	LongestLimit  int      `yaml:"longest_limit"`
	TopicKeywords []string `yaml:"topic_keywords"`
}

// DefaultOptions returns the stock limits and keywords.
func DefaultOptions() Options {
	return Options{
		SpeakerLimit:  DefaultSpeakerLimit,
		RankLimit:     DefaultRankLimit,
		LongestLimit:  DefaultLongestLimit,
		TopicKeywords: append([]string(nil), DefaultTopicKeywords...),
	}
}

// Normalize fills unset limits with defaults and cleans the keyword list.
// A nil keyword list becomes the default list; an explicitly empty one stays
// empty.
func (o Options) Normalize() Options {
	if o.SpeakerLimit <= 0 {
		o.SpeakerLimit = DefaultSpeakerLimit
	}
	if o.RankLimit <= 0 {
		o.RankLimit = DefaultRankLimit
	}
	if o.LongestLimit <= 0 {
		o.LongestLimit = DefaultLongestLimit
	}
	if o.TopicKeywords == nil {
		o.TopicKeywords = append([]string(nil), DefaultTopicKeywords...)
	} else {
		o.TopicKeywords = Keywords(o.TopicKeywords)
	}
	return o
}

// Keywords lower-cases, trims and de-duplicates a keyword list, dropping
// blanks. The order of first occurrence is kept.
func Keywords(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Limit returns limit, or def when limit is not positive.
func Limit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}
