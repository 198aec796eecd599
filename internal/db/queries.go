package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jwulff/meetingbank/internal/catalog"
)

// TopSpeakerMeetings returns the meetings with the most speakers.
func (s *Store) TopSpeakerMeetings(ctx context.Context, limit int) ([]catalog.SpeakerMeeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meeting_id, city, COALESCE(speaker_count, 0)
		FROM transcripts
		ORDER BY speaker_count DESC, meeting_id ASC
		LIMIT ?
	`, catalog.Limit(limit, catalog.DefaultSpeakerLimit))
	if err != nil {
		return nil, fmt.Errorf("query top speaker meetings: %w", err)
	}
	return collect(rows, "speaker meeting", func(rows *sql.Rows, m *catalog.SpeakerMeeting) error {
		return rows.Scan(&m.MeetingID, &m.City, &m.SpeakerCount)
	})
}

// AvgTranscriptLengthByCity returns the mean transcript word count per city,
// ordered by city.
func (s *Store) AvgTranscriptLengthByCity(ctx context.Context) ([]catalog.CityAverage, error) {
	return s.cityAverage(ctx, "transcript_word_count")
}

// AvgSpeakersByCity returns the mean speaker count per city, ordered by city.
func (s *Store) AvgSpeakersByCity(ctx context.Context) ([]catalog.CityAverage, error) {
	return s.cityAverage(ctx, "speaker_count")
}

// cityAverage averages column per city. AVG skips NULLs; a city with no
// non-NULL values averages to 0.
func (s *Store) cityAverage(ctx context.Context, column string) ([]catalog.CityAverage, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT city, COALESCE(AVG(%s), 0)
		FROM transcripts
		GROUP BY city
		ORDER BY city ASC
	`, column))
	if err != nil {
		return nil, fmt.Errorf("query average %s: %w", column, err)
	}
	return collect(rows, "city average", func(rows *sql.Rows, a *catalog.CityAverage) error {
		return rows.Scan(&a.City, &a.Average)
	})
}

// TopicMentionsByCity counts per city the meetings mentioning any keyword.
func (s *Store) TopicMentionsByCity(ctx context.Context, keywords []string) ([]catalog.CityCount, error) {
	keywords = catalog.Keywords(keywords)
	if len(keywords) == 0 {
		return []catalog.CityCount{}, nil
	}

	where, args := mentionsClause(keywords)
	rows, err := s.db.QueryContext(ctx, `
		SELECT city, COUNT(*) AS mention_count
		FROM transcripts
		WHERE `+where+`
		GROUP BY city
		ORDER BY mention_count DESC, city ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query topic mentions: %w", err)
	}
	return collect(rows, "topic mentions", func(rows *sql.Rows, c *catalog.CityCount) error {
		return rows.Scan(&c.City, &c.Count)
	})
}

// LongestMeetingPerCity returns each city's longest meeting, ordered by city.
func (s *Store) LongestMeetingPerCity(ctx context.Context) ([]catalog.LongestMeeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT city, meeting_id, COALESCE(transcript_word_count, 0)
		FROM (
			SELECT city, meeting_id, transcript_word_count,
				ROW_NUMBER() OVER (
					PARTITION BY city
					ORDER BY transcript_word_count DESC, meeting_id ASC
				) AS pos
			FROM transcripts
		)
		WHERE pos = 1
		ORDER BY city ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query longest meeting per city: %w", err)
	}
	return collect(rows, "longest meeting", func(rows *sql.Rows, m *catalog.LongestMeeting) error {
		return rows.Scan(&m.City, &m.MeetingID, &m.TopWords)
	})
}

// MeetingCountByCity returns the number of meetings per city.
func (s *Store) MeetingCountByCity(ctx context.Context) ([]catalog.CityCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT city, COUNT(*) AS total_meetings
		FROM transcripts
		GROUP BY city
		ORDER BY total_meetings DESC, city ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query meeting count: %w", err)
	}
	return collect(rows, "meeting count", func(rows *sql.Rows, c *catalog.CityCount) error {
		return rows.Scan(&c.City, &c.Count)
	})
}

// RankMeetingsByLength ranks meetings by word count with RANK(), so tied
// meetings share a rank and the following rank skips ahead.
func (s *Store) RankMeetingsByLength(ctx context.Context, limit int) ([]catalog.RankedMeeting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meeting_id, city, COALESCE(transcript_word_count, 0),
			RANK() OVER (ORDER BY transcript_word_count DESC) AS rnk
		FROM transcripts
		ORDER BY rnk ASC, meeting_id ASC
		LIMIT ?
	`, catalog.Limit(limit, catalog.DefaultRankLimit))
	if err != nil {
		return nil, fmt.Errorf("query meeting rank: %w", err)
	}
	return collect(rows, "ranked meeting", func(rows *sql.Rows, m *catalog.RankedMeeting) error {
		return rows.Scan(&m.MeetingID, &m.City, &m.WordCount, &m.Rank)
	})
}

// TopLongestMeetings returns the meetings with the highest word count.
func (s *Store) TopLongestMeetings(ctx context.Context, limit int) ([]catalog.MeetingLength, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meeting_id, city, COALESCE(transcript_word_count, 0)
		FROM transcripts
		ORDER BY transcript_word_count DESC, meeting_id ASC
		LIMIT ?
	`, catalog.Limit(limit, catalog.DefaultLongestLimit))
	if err != nil {
		return nil, fmt.Errorf("query longest meetings: %w", err)
	}
	return collect(rows, "meeting length", func(rows *sql.Rows, m *catalog.MeetingLength) error {
		return rows.Scan(&m.MeetingID, &m.City, &m.WordCount)
	})
}

// collect drains rows through scan and closes them.
func collect[T any](rows *sql.Rows, what string, scan func(*sql.Rows, *T) error) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
