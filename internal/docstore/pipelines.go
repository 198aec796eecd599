package docstore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// sortByWords orders by word count descending; meeting_id breaks ties.
var sortByWords = bson.D{
	{Key: "transcript_word_count", Value: -1},
	{Key: "meeting_id", Value: 1},
}

// cityAveragePipeline averages field per city. $avg skips missing and null
// values; $ifNull turns an all-null group into 0.
func cityAveragePipeline(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$city"},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$" + field}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "city", Value: "$_id"},
			{Key: "average", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$average", 0}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "city", Value: 1}}}},
	}
}

// mentionsFilter ORs one case-insensitive literal regex per keyword.
func mentionsFilter(keywords []string) bson.D {
	clauses := make(bson.A, 0, len(keywords))
	for _, k := range keywords {
		clauses = append(clauses, bson.D{{
			Key:   "full_transcript_text",
			Value: primitive.Regex{Pattern: regexp.QuoteMeta(k), Options: "i"},
		}})
	}
	return bson.D{{Key: "$or", Value: clauses}}
}

// countByCityPipeline counts the documents per city matching match, count
// descending.
func countByCityPipeline(match bson.D) mongo.Pipeline {
	var p mongo.Pipeline
	if len(match) > 0 {
		p = append(p, bson.D{{Key: "$match", Value: match}})
	}
	return append(p,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$city"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "city", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "city", Value: 1}}}},
	)
}

// longestPerCityPipeline sorts globally by word count and keeps the first
// document of every city group.
func longestPerCityPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: sortByWords}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$city"},
			{Key: "meeting_id", Value: bson.D{{Key: "$first", Value: "$meeting_id"}}},
			{Key: "topWords", Value: bson.D{{Key: "$first", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$transcript_word_count", 0}}}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "city", Value: "$_id"},
			{Key: "meeting_id", Value: 1},
			{Key: "topWords", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "city", Value: 1}}}},
	}
}

// rankPipeline assigns $rank over word count descending, which gives tied
// documents the same rank and skips the following ranks.
func rankPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$setWindowFields", Value: bson.D{
			{Key: "sortBy", Value: bson.D{{Key: "transcript_word_count", Value: -1}}},
			{Key: "output", Value: bson.D{
				{Key: "rank", Value: bson.D{{Key: "$rank", Value: bson.D{}}}},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "rank", Value: 1}, {Key: "meeting_id", Value: 1}}}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$project", Value: lengthProjection(bson.E{Key: "rank", Value: 1})}},
	}
}

// lengthProjection selects meeting_id, city and word count (null as 0),
// plus extra.
func lengthProjection(extra ...bson.E) bson.D {
	p := bson.D{
		{Key: "_id", Value: 0},
		{Key: "meeting_id", Value: 1},
		{Key: "city", Value: 1},
		{Key: "transcript_word_count", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$transcript_word_count", 0}}}},
	}
	return append(p, extra...)
}
