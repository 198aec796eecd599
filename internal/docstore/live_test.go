package docstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jwulff/meetingbank/internal/catalog"
)

// TestLiveCollection runs the catalog against a real MongoDB. Skipped unless
// MONGO_URI is set.
func TestLiveCollection(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := Open(ctx, uri, os.Getenv("MONGO_DB_NAME"), os.Getenv("MONGO_COLLECTION_NAME"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	counts, err := store.MeetingCountByCity(ctx)
	if err != nil {
		t.Fatalf("MeetingCountByCity: %v", err)
	}
	for _, c := range counts {
		fmt.Printf("  %s: %d meetings\n", c.City, c.Count)
	}

	mentions, err := store.TopicMentionsByCity(ctx, catalog.DefaultTopicKeywords)
	if err != nil {
		t.Fatalf("TopicMentionsByCity: %v", err)
	}
	for _, m := range mentions {
		fmt.Printf("  %s: %d topic mentions\n", m.City, m.Count)
	}

	ranked, err := store.RankMeetingsByLength(ctx, 5)
	if err != nil {
		t.Fatalf("RankMeetingsByLength: %v", err)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Rank < ranked[i-1].Rank {
			t.Errorf("rank %d after %d", ranked[i].Rank, ranked[i-1].Rank)
		}
	}
}
