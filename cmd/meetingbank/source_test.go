package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreSQLite(t *testing.T) {
	ctx := context.Background()
	c := config.Default()
	c.DBPath = filepath.Join(t.TempDir(), "nested", "meetingbank.sqlite")

	w, name, err := openStore(ctx, c, true)
	require.NoError(t, err)
	assert.Equal(t, c.DBPath, name)

	n, err := w.InsertTranscripts(ctx, []catalog.Transcript{
		{MeetingID: "1", City: "A", WordCount: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	total, err := w.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.NoError(t, w.Close())

	r, _, err := openStore(ctx, c, false)
	require.NoError(t, err)
	defer r.Close()

	counts, err := r.MeetingCountByCity(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.CityCount{{City: "A", Count: 1}}, counts)
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	c := config.Default()
	c.Backend = "postgres"

	_, _, err := openStore(context.Background(), c, false)
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}
