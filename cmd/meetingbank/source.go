package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/config"
	"github.com/jwulff/meetingbank/internal/db"
	"github.com/jwulff/meetingbank/internal/docstore"
)

// connectTimeout bounds the initial MongoDB connect and ping.
const connectTimeout = 15 * time.Second

// store is a catalog source that can also load records.
type store interface {
	catalog.Source
	InsertTranscripts(ctx context.Context, records []catalog.Transcript) (int, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// openStore opens the configured backend. writable opens SQLite read-write and
// creates the schema.
func openStore(ctx context.Context, c config.Config, writable bool) (store, string, error) {
	switch c.Backend {
	case config.BackendSQLite:
		var (
			s   *db.Store
			err error
		)
		if writable {
			s, err = db.Create(c.DBPath)
		} else {
			s, err = db.Open(c.DBPath)
		}
		if err != nil {
			return nil, "", err
		}
		return s, c.DBPath, nil

	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		s, err := docstore.Open(ctx, c.Mongo.URI, c.Mongo.Database, c.Mongo.Collection)
		if err != nil {
			return nil, "", err
		}
		return s, c.Mongo.Database + "." + c.Mongo.Collection, nil
	}
	return nil, "", fmt.Errorf("%w: %q", config.ErrUnknownBackend, c.Backend)
}
