// Package db provides SQLite access to the meeting-transcript store.
package db

import (
	"strings"
)

// schema is the transcripts table. A record is identified by its city and
// meeting ID; the numeric fields may be NULL.
const schema = `
	CREATE TABLE IF NOT EXISTS transcripts (
		meeting_id TEXT NOT NULL,
		city TEXT NOT NULL,
		speaker_count INTEGER,
		transcript_word_count INTEGER,
		full_transcript_text TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (city, meeting_id)
	);
`

// mentionsClause builds an OR of case-insensitive substring tests over the
// transcript text, one per keyword. instr is used instead of LIKE so that
// '%' and '_' in a keyword match literally.
func mentionsClause(keywords []string) (string, []any) {
	parts := make([]string, 0, len(keywords))
	args := make([]any, 0, len(keywords))
	for _, k := range keywords {
		parts = append(parts, "instr(lower(full_transcript_text), ?) > 0")
		args = append(args, strings.ToLower(k))
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
