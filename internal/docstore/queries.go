package docstore

import (
	"context"
	"fmt"

	"github.com/jwulff/meetingbank/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TopSpeakerMeetings returns the meetings with the most speakers.
func (s *Store) TopSpeakerMeetings(ctx context.Context, limit int) ([]catalog.SpeakerMeeting, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "speaker_count", Value: -1}, {Key: "meeting_id", Value: 1}}).
		SetLimit(int64(catalog.Limit(limit, catalog.DefaultSpeakerLimit))).
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "meeting_id", Value: 1},
			{Key: "city", Value: 1},
			{Key: "speaker_count", Value: 1},
		})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find top speaker meetings: %w", err)
	}
	return decodeAll[catalog.SpeakerMeeting](ctx, cur, "speaker meetings")
}

// AvgTranscriptLengthByCity returns the mean transcript word count per city.
func (s *Store) AvgTranscriptLengthByCity(ctx context.Context) ([]catalog.CityAverage, error) {
	return aggregate[catalog.CityAverage](ctx, s.coll, cityAveragePipeline("transcript_word_count"), "average transcript length")
}

// AvgSpeakersByCity returns the mean speaker count per city.
func (s *Store) AvgSpeakersByCity(ctx context.Context) ([]catalog.CityAverage, error) {
	return aggregate[catalog.CityAverage](ctx, s.coll, cityAveragePipeline("speaker_count"), "average speakers")
}

// TopicMentionsByCity counts per city the meetings mentioning any keyword.
func (s *Store) TopicMentionsByCity(ctx context.Context, keywords []string) ([]catalog.CityCount, error) {
	keywords = catalog.Keywords(keywords)
	if len(keywords) == 0 {
		return []catalog.CityCount{}, nil
	}
	return aggregate[catalog.CityCount](ctx, s.coll, countByCityPipeline(mentionsFilter(keywords)), "topic mentions")
}

// LongestMeetingPerCity returns each city's longest meeting.
func (s *Store) LongestMeetingPerCity(ctx context.Context) ([]catalog.LongestMeeting, error) {
	return aggregate[catalog.LongestMeeting](ctx, s.coll, longestPerCityPipeline(), "longest meeting per city")
}

// MeetingCountByCity returns the number of meetings per city.
func (s *Store) MeetingCountByCity(ctx context.Context) ([]catalog.CityCount, error) {
	return aggregate[catalog.CityCount](ctx, s.coll, countByCityPipeline(nil), "meeting count")
}

// RankMeetingsByLength ranks meetings by word count with $rank.
func (s *Store) RankMeetingsByLength(ctx context.Context, limit int) ([]catalog.RankedMeeting, error) {
	return aggregate[catalog.RankedMeeting](ctx, s.coll, rankPipeline(catalog.Limit(limit, catalog.DefaultRankLimit)), "meeting rank")
}

// TopLongestMeetings returns the meetings with the highest word count.
func (s *Store) TopLongestMeetings(ctx context.Context, limit int) ([]catalog.MeetingLength, error) {
	opts := options.Find().
		SetSort(sortByWords).
		SetLimit(int64(catalog.Limit(limit, catalog.DefaultLongestLimit))).
		SetProjection(lengthProjection())
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find longest meetings: %w", err)
	}
	return decodeAll[catalog.MeetingLength](ctx, cur, "longest meetings")
}

func aggregate[T any](ctx context.Context, coll *mongo.Collection, p mongo.Pipeline, what string) ([]T, error) {
	cur, err := coll.Aggregate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", what, err)
	}
	return decodeAll[T](ctx, cur, what)
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor, what string) ([]T, error) {
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return out, nil
}
