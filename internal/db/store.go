package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwulff/meetingbank/internal/catalog"

	_ "modernc.org/sqlite"
)

// Store provides access to the transcripts SQLite database.
type Store struct {
	db *sql.DB
}

var _ catalog.Source = (*Store)(nil)

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "MeetingBank", "meetingbank.sqlite")
}

// Open opens the database in read-only mode.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path)
	return open(dsn)
}

// Create opens the database for writing, creating the file, its directory
// and the schema when missing.
func Create(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	s, err := open(dsn)
	if err != nil {
		return nil, err
	}
	if _, err := s.db.Exec(schema); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertTranscripts writes records in a single transaction, skipping any
// whose (city, meeting ID) is already stored. It returns the number of rows
// inserted.
func (s *Store) InsertTranscripts(ctx context.Context, records []catalog.Transcript) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transcripts
			(meeting_id, city, speaker_count, transcript_word_count, full_transcript_text)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, r := range records {
		res, err := stmt.ExecContext(ctx, r.MeetingID, r.City, r.SpeakerCount, r.WordCount, r.Text)
		if err != nil {
			return 0, fmt.Errorf("insert transcript %s/%s: %w", r.City, r.MeetingID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("insert transcript %s/%s: %w", r.City, r.MeetingID, err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return inserted, nil
}

// Count returns the number of stored transcripts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transcripts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transcripts: %w", err)
	}
	return n, nil
}
