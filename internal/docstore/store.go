// Package docstore runs the transcript catalog against a MongoDB collection
// using aggregation pipelines.
package docstore

import (
	"context"
	"fmt"

	"github.com/jwulff/meetingbank/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default database and collection names.
const (
	DefaultDatabase   = "database_architects_unstructured"
	DefaultCollection = "transcripts"
)

// Store runs catalog queries against one MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ catalog.Source = (*Store)(nil)

// Open connects to uri and selects database/collection.
func Open(ctx context.Context, uri, database, collection string) (*Store, error) {
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// InsertTranscripts inserts the records whose (city, meeting ID) is not
// already in the collection and returns the number inserted.
func (s *Store) InsertTranscripts(ctx context.Context, records []catalog.Transcript) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	cur, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetProjection(bson.D{{Key: "city", Value: 1}, {Key: "meeting_id", Value: 1}, {Key: "_id", Value: 0}}))
	if err != nil {
		return 0, fmt.Errorf("find existing transcripts: %w", err)
	}
	var existing []recordKey
	if err := cur.All(ctx, &existing); err != nil {
		return 0, fmt.Errorf("decode existing transcripts: %w", err)
	}

	docs := newRecords(records, existing)
	if len(docs) == 0 {
		return 0, nil
	}

	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert transcripts: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Count returns the number of stored transcripts.
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count transcripts: %w", err)
	}
	return int(n), nil
}

type recordKey struct {
	City      string `bson:"city"`
	MeetingID string `bson:"meeting_id"`
}

// newRecords drops records already present in existing, and repeats within
// records, keeping the first.
func newRecords(records []catalog.Transcript, existing []recordKey) []interface{} {
	seen := make(map[recordKey]bool, len(existing)+len(records))
	for _, k := range existing {
		seen[k] = true
	}

	var docs []interface{}
	for _, r := range records {
		k := recordKey{City: r.City, MeetingID: r.MeetingID}
		if seen[k] {
			continue
		}
		seen[k] = true
		docs = append(docs, r)
	}
	return docs
}
