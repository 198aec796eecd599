package docstore

import (
	"testing"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stage(t *testing.T, s bson.D) (string, any) {
	t.Helper()
	require.Len(t, s, 1)
	return s[0].Key, s[0].Value
}

func TestMentionsFilter(t *testing.T) {
	f := mentionsFilter([]string{"budget", "a.b"})

	require.Len(t, f, 1)
	assert.Equal(t, "$or", f[0].Key)

	clauses, ok := f[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 2)

	first := clauses[0].(bson.D)
	assert.Equal(t, "full_transcript_text", first[0].Key)
	assert.Equal(t, primitive.Regex{Pattern: "budget", Options: "i"}, first[0].Value)

	// Keywords are literals.
	second := clauses[1].(bson.D)
	assert.Equal(t, primitive.Regex{Pattern: `a\.b`, Options: "i"}, second[0].Value)
}

func TestCountByCityPipeline(t *testing.T) {
	all := countByCityPipeline(nil)
	require.Len(t, all, 3)
	key, _ := stage(t, all[0])
	assert.Equal(t, "$group", key)

	matched := countByCityPipeline(mentionsFilter([]string{"housing"}))
	require.Len(t, matched, 4)
	key, _ = stage(t, matched[0])
	assert.Equal(t, "$match", key)

	key, sort := stage(t, matched[3])
	assert.Equal(t, "$sort", key)
	assert.Equal(t, bson.D{{Key: "count", Value: -1}, {Key: "city", Value: 1}}, sort)
}

func TestLongestPerCityPipelineSortsFirst(t *testing.T) {
	p := longestPerCityPipeline()
	require.NotEmpty(t, p)

	key, sort := stage(t, p[0])
	assert.Equal(t, "$sort", key)
	assert.Equal(t, sortByWords, sort)

	key, _ = stage(t, p[1])
	assert.Equal(t, "$group", key)
}

func TestRankPipeline(t *testing.T) {
	p := rankPipeline(5)
	require.Len(t, p, 4)

	key, window := stage(t, p[0])
	assert.Equal(t, "$setWindowFields", key)
	assert.Contains(t, window, bson.E{Key: "sortBy", Value: bson.D{{Key: "transcript_word_count", Value: -1}}})

	key, limit := stage(t, p[2])
	assert.Equal(t, "$limit", key)
	assert.Equal(t, int64(5), limit)
}

func TestCityAveragePipeline(t *testing.T) {
	p := cityAveragePipeline("speaker_count")
	require.Len(t, p, 3)

	_, group := stage(t, p[0])
	assert.Contains(t, group, bson.E{Key: "average", Value: bson.D{{Key: "$avg", Value: "$speaker_count"}}})
}

func TestNewRecords(t *testing.T) {
	records := []catalog.Transcript{
		{City: "A", MeetingID: "1"},
		{City: "A", MeetingID: "2"},
		{City: "B", MeetingID: "1"},
		{City: "B", MeetingID: "1", WordCount: 9},
	}
	existing := []recordKey{{City: "A", MeetingID: "1"}}

	docs := newRecords(records, existing)

	require.Len(t, docs, 2)
	assert.Equal(t, records[1], docs[0])
	assert.Equal(t, records[2], docs[1])
}

func TestNewRecordsAllExisting(t *testing.T) {
	docs := newRecords(
		[]catalog.Transcript{{City: "A", MeetingID: "1"}},
		[]recordKey{{City: "A", MeetingID: "1"}},
	)
	assert.Empty(t, docs)
}
