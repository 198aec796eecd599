package report

import (
	"context"
	"strconv"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/table"
)

var (
	speakerMeetingColumns = []table.Column[catalog.SpeakerMeeting]{
		{Name: "meeting_id", Value: func(m catalog.SpeakerMeeting) string { return m.MeetingID }},
		{Name: "city", Value: func(m catalog.SpeakerMeeting) string { return m.City }},
		{Name: "speaker_count", Value: func(m catalog.SpeakerMeeting) string { return strconv.Itoa(m.SpeakerCount) }},
	}

	lengthColumns = []table.Column[catalog.CityAverage]{
		{Name: "City", Value: func(a catalog.CityAverage) string { return a.City }},
		{Name: "AvgTranscriptLength", Value: func(a catalog.CityAverage) string { return strconv.Itoa(RoundLength(a.Average)) }},
	}

	speakerColumns = []table.Column[catalog.CityAverage]{
		{Name: "City", Value: func(a catalog.CityAverage) string { return a.City }},
		{Name: "AvgSpeakers", Value: func(a catalog.CityAverage) string { return FormatSpeakers(a.Average) }},
	}

	mentionColumns = []table.Column[catalog.CityCount]{
		{Name: "city", Value: func(c catalog.CityCount) string { return c.City }},
		{Name: "mentionCount", Value: func(c catalog.CityCount) string { return strconv.Itoa(c.Count) }},
	}

	longestColumns = []table.Column[catalog.LongestMeeting]{
		{Name: "city", Value: func(m catalog.LongestMeeting) string { return m.City }},
		{Name: "meeting_id", Value: func(m catalog.LongestMeeting) string { return m.MeetingID }},
		{Name: "topWords", Value: func(m catalog.LongestMeeting) string { return strconv.Itoa(m.TopWords) }},
	}

	countColumns = []table.Column[catalog.CityCount]{
		{Name: "city", Value: func(c catalog.CityCount) string { return c.City }},
		{Name: "totalMeetings", Value: func(c catalog.CityCount) string { return strconv.Itoa(c.Count) }},
	}

	rankColumns = []table.Column[catalog.RankedMeeting]{
		{Name: "meeting_id", Value: func(m catalog.RankedMeeting) string { return m.MeetingID }},
		{Name: "city", Value: func(m catalog.RankedMeeting) string { return m.City }},
		{Name: "transcript_word_count", Value: func(m catalog.RankedMeeting) string { return strconv.Itoa(m.WordCount) }},
		{Name: "rank", Value: func(m catalog.RankedMeeting) string { return strconv.Itoa(m.Rank) }},
	}

	lengthRowColumns = []table.Column[catalog.MeetingLength]{
		{Name: "meeting_id", Value: func(m catalog.MeetingLength) string { return m.MeetingID }},
		{Name: "city", Value: func(m catalog.MeetingLength) string { return m.City }},
		{Name: "transcript_word_count", Value: func(m catalog.MeetingLength) string { return strconv.Itoa(m.WordCount) }},
	}
)

func topSpeakerMeetings(ctx context.Context, src catalog.Source, opts catalog.Options) (table.Table, error) {
	rows, err := src.TopSpeakerMeetings(ctx, opts.SpeakerLimit)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", speakerMeetingColumns, rows), nil
}

func avgTranscriptLength(ctx context.Context, src catalog.Source, _ catalog.Options) (table.Table, error) {
	rows, err := src.AvgTranscriptLengthByCity(ctx)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", lengthColumns, rows), nil
}

func avgSpeakers(ctx context.Context, src catalog.Source, _ catalog.Options) (table.Table, error) {
	rows, err := src.AvgSpeakersByCity(ctx)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", speakerColumns, rows), nil
}

func topicMentions(ctx context.Context, src catalog.Source, opts catalog.Options) (table.Table, error) {
	rows, err := src.TopicMentionsByCity(ctx, opts.TopicKeywords)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", mentionColumns, rows), nil
}

func longestMeetingPerCity(ctx context.Context, src catalog.Source, _ catalog.Options) (table.Table, error) {
	rows, err := src.LongestMeetingPerCity(ctx)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", longestColumns, rows), nil
}

func meetingCount(ctx context.Context, src catalog.Source, _ catalog.Options) (table.Table, error) {
	rows, err := src.MeetingCountByCity(ctx)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", countColumns, rows), nil
}

func rankMeetings(ctx context.Context, src catalog.Source, opts catalog.Options) (table.Table, error) {
	rows, err := src.RankMeetingsByLength(ctx, opts.RankLimit)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", rankColumns, rows), nil
}

func topLongestMeetings(ctx context.Context, src catalog.Source, opts catalog.Options) (table.Table, error) {
	rows, err := src.TopLongestMeetings(ctx, opts.LongestLimit)
	if err != nil {
		return table.Table{}, err
	}
	return table.Build("", lengthRowColumns, rows), nil
}
