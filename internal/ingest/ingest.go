// Package ingest turns a MeetingBank JSON export into transcript records.
//
// The export is an object keyed by "<City>_<MeetingID>". Every meeting holds
// agenda items under "itemInfo", and each item a list of transcript segments
// with the spoken text and the speaker.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/sirupsen/logrus"
)

// ErrMalformedKey marks a meeting key without a city prefix.
var ErrMalformedKey = errors.New("malformed meeting key")

var log = logrus.WithField("component", "ingest")

// DefaultCities are the councils of the reference MeetingBank extraction.
var DefaultCities = []string{"LongBeachCC", "SeattleCityCouncil"}

// Options filters parsed meetings.
type Options struct {
	// Cities keeps only these cities; empty keeps all.
	Cities []string `yaml:"cities"`
}

type meeting struct {
	ItemInfo items `json:"itemInfo"`
}

// items holds the agenda items of a meeting in document order.
type items []item

func (s *items) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("itemInfo: want object, got %v", tok)
	}
	for dec.More() {
		// Item key.
		if _, err := dec.Token(); err != nil {
			return err
		}
		var it item
		if err := dec.Decode(&it); err != nil {
			return err
		}
		*s = append(*s, it)
	}
	_, err = dec.Token()
	return err
}

type item struct {
	Transcripts []segment `json:"transcripts"`
}

type segment struct {
	Text    string  `json:"text"`
	Speaker *string `json:"speaker"`
}

// Parse reads a MeetingBank export and returns one record per meeting,
// sorted by city then meeting ID.
func Parse(r io.Reader, opts Options) ([]catalog.Transcript, error) {
	var raw map[string]meeting
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode meetingbank json: %w", err)
	}

	keep := make(map[string]bool, len(opts.Cities))
	for _, c := range opts.Cities {
		keep[c] = true
	}

	records := make([]catalog.Transcript, 0, len(raw))
	for key, m := range raw {
		city, id, err := SplitKey(key)
		if err != nil {
			log.WithError(err).Debug("skipping meeting")
			continue
		}
		if len(keep) > 0 && !keep[city] {
			continue
		}
		records = append(records, build(city, id, m))
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].City != records[j].City {
			return records[i].City < records[j].City
		}
		return records[i].MeetingID < records[j].MeetingID
	})

	log.WithField("meetings", len(records)).Debug("parsed meetingbank export")
	return records, nil
}

// SplitKey splits "LongBeachCC_08092022" into its city and meeting ID. The
// meeting ID is the second "_"-separated field; later fields are dropped.
func SplitKey(key string) (city, id string, err error) {
	parts := strings.Split(key, "_")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	return parts[0], parts[1], nil
}

// build joins the non-empty segment texts of every item, in document order,
// and counts distinct speakers.
func build(city, id string, m meeting) catalog.Transcript {
	var parts []string
	speakers := make(map[string]bool)
	for _, it := range m.ItemInfo {
		for _, seg := range it.Transcripts {
			if text := strings.TrimSpace(seg.Text); text != "" {
				parts = append(parts, text)
			}
			// An empty speaker name is still a speaker.
			if seg.Speaker != nil {
				speakers[*seg.Speaker] = true
			}
		}
	}

	text := strings.Join(parts, " ")
	return catalog.Transcript{
		MeetingID:    id,
		City:         city,
		SpeakerCount: len(speakers),
		WordCount:    len(strings.Fields(text)),
		Text:         text,
	}
}
