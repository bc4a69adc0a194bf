// Package dataset reads the conversation export the pipeline analyses.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

// ErrNotArray is returned when the input document is not a JSON array.
var ErrNotArray = errors.New("dataset: input is not a JSON array")

// record is one exported conversation. Every field may be null or missing.
type record struct {
	Summary            *string  `json:"summary"`
	Transcript         *string  `json:"transcript"`
	TranscriptSpeaker1 *string  `json:"transcript_speaker_1"`
	AudioDuration      *float64 `json:"audio_duration"`
}

func (r record) conversation() models.Conversation {
	var c models.Conversation
	if r.Summary != nil {
		c.Summary = *r.Summary
	}
	switch {
	case r.Transcript != nil:
		c.Transcript = *r.Transcript
	case r.TranscriptSpeaker1 != nil:
		c.Transcript = *r.TranscriptSpeaker1
	}
	if r.AudioDuration != nil {
		c.AudioDuration = *r.AudioDuration
	}
	return c
}

// Dataset is the leading slice of the export kept for analysis.
type Dataset struct {
	Conversations []models.Conversation
	// Available is the number of records in the file before the cap.
	Available int
}

// Load reads the JSON array at path and keeps its first limit records.
// limit <= 0 keeps everything.
func Load(path string, limit int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f, limit)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode streams a JSON array of records from r.
func Decode(r io.Reader, limit int) (*Dataset, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotArray
		}
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, ErrNotArray
	}

	ds := &Dataset{Conversations: []models.Conversation{}}
	for dec.More() {
		if limit > 0 && len(ds.Conversations) >= limit {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("record %d: %w", ds.Available, err)
			}
			ds.Available++
			continue
		}

		var rec record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", ds.Available, err)
		}
		ds.Conversations = append(ds.Conversations, rec.conversation())
		ds.Available++
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ds, nil
}
