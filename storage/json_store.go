package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"

	"tempo/entry"
)

var ErrEntryNotFound = errors.New("entry not found")

// Store is the persistence contract the commands and engine work against.
// JSONStore is the production implementation; tests may substitute
// MemoryStore.
type Store interface {
	Entries() []entry.TimeEntry
	BrainstormNotes() []entry.BrainstormNote
	Append(e entry.TimeEntry) entry.TimeEntry
	AppendBrainstorm(n entry.BrainstormNote)
	Remove(id int64) error
	Query(start, end time.Time) []entry.TimeEntry
	Flush() error
}

const lockAcquireTimeout = 5 * time.Second

// JSONStore holds the persisted document in memory between Open and Close.
// A file lock next to the data file guards the load-mutate-flush sequence
// against concurrent invocations.
type JSONStore struct {
	path     string
	fileLock *flock.Flock
	doc      entry.Document
	nextID   int64
}

// Open acquires the file lock and loads the document at path. A missing file
// is an empty store, a malformed file is a parse error.
func Open(path string) (*JSONStore, error) {
	fileLock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockAcquireTimeout)
	defer cancel()
	locked, err := fileLock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		// Lock directory may not exist yet on first run.
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			locked, err = fileLock.TryLockContext(ctx, 50*time.Millisecond)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("lock data file %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("data file %s is locked by another process", path)
	}

	store := &JSONStore{path: path, fileLock: fileLock}
	if err := store.load(); err != nil {
		_ = fileLock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the file lock. It never discards in-memory state; callers
// decide whether to Flush first.
func (s *JSONStore) Close() error {
	if s.fileLock == nil {
		return nil
	}
	if err := s.fileLock.Unlock(); err != nil {
		return fmt.Errorf("unlock data file %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.doc = entry.Document{}
			s.nextID = 1
			return nil
		}
		return fmt.Errorf("read data file %s: %w", s.path, err)
	}

	var doc entry.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse data file %s: %w", s.path, err)
	}

	s.doc = doc
	s.nextID = 1
	for _, e := range doc.Entries {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}
	return nil
}

func (s *JSONStore) Entries() []entry.TimeEntry {
	return s.doc.Entries
}

func (s *JSONStore) BrainstormNotes() []entry.BrainstormNote {
	return s.doc.Brainstorm
}

// Append assigns the next id and stores the entry. Existing entries are
// never mutated.
func (s *JSONStore) Append(e entry.TimeEntry) entry.TimeEntry {
	e.ID = s.nextID
	s.nextID++
	s.doc.Entries = append(s.doc.Entries, e)
	return e
}

func (s *JSONStore) AppendBrainstorm(n entry.BrainstormNote) {
	s.doc.Brainstorm = append(s.doc.Brainstorm, n)
}

func (s *JSONStore) Remove(id int64) error {
	for i, e := range s.doc.Entries {
		if e.ID == id {
			s.doc.Entries = append(s.doc.Entries[:i], s.doc.Entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// Query returns entries with timestamp in [start, end], chronological, with
// insertion order (id) as the tie-break for equal timestamps.
func (s *JSONStore) Query(start, end time.Time) []entry.TimeEntry {
	return queryEntries(s.doc.Entries, start, end)
}

// Flush persists the document atomically: the content is written to a
// temporary file in the target directory and renamed over the data file, so
// a crash mid-write never leaves an unparseable document.
func (s *JSONStore) Flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}

	doc := s.doc
	if doc.Entries == nil {
		doc.Entries = []entry.TimeEntry{}
	}
	if doc.Brainstorm == nil {
		doc.Brainstorm = []entry.BrainstormNote{}
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(dir, ".tempo-*.json")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp data file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace data file %s: %w", s.path, err)
	}
	return nil
}

func queryEntries(entries []entry.TimeEntry, start, end time.Time) []entry.TimeEntry {
	matched := make([]entry.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.Before(start) || e.Timestamp.After(end) {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	return matched
}
