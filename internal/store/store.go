// Package store implements the flat-file testimonial store: a single
// human-editable JSON array that is read whole, mutated in memory and
// rewritten whole. There is no locking against a second concurrent writer;
// the moderation tool is a single-operator process by convention.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/kudos/internal/filex"
	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// ErrCorrupt marks a store file whose content is not a JSON array of
// records. Nothing is ever written over a corrupt store.
var ErrCorrupt = errors.New("store file is not valid")

// FileStore reads and rewrites the testimonial store file.
type FileStore struct {
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// WithClock replaces the timestamp source. Tests use this to pin creation
// instants.
func (s *FileStore) WithClock(now func() time.Time) *FileStore {
	s.now = now
	return s
}

// Load reads and parses the whole store. A missing file is not an error and
// yields an empty store; unparseable content wraps ErrCorrupt.
func (s *FileStore) Load(ctx context.Context) ([]testimonial.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []testimonial.Record{}, nil
		}
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}

	var records []testimonial.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return records, nil
}

// Save rewrites the whole store file. The format matches the hand-edited
// original: a 2-space-indented JSON array with a trailing newline. The write
// goes through a temp file and rename so a crashed run cannot truncate the
// store.
func (s *FileStore) Save(ctx context.Context, records []testimonial.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	data = append(data, '\n')

	if err := filex.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save store %s: %w", s.path, err)
	}
	return nil
}

// Append loads the store, creates a record with the next free id and the
// current instant, re-sorts newest first and rewrites the file. The new
// record is returned with its assigned id.
//
// Read-modify-write is atomic only relative to a single invocation; two
// simultaneous runs can both observe the same max id.
func (s *FileStore) Append(ctx context.Context, quote, author, title, company string, featured, approved bool) (*testimonial.Record, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	record := testimonial.Record{
		ID:        testimonial.NextID(records),
		Quote:     quote,
		Author:    author,
		Role:      testimonial.DeriveRole(title, company),
		Featured:  featured,
		Approved:  approved,
		Timestamp: s.now().UTC(),
	}

	records = append(records, record)
	testimonial.SortNewestFirst(records)

	if err := s.Save(ctx, records); err != nil {
		return nil, err
	}
	return &record, nil
}
