package storage

import (
	"time"

	"tempo/entry"
)

// MemoryStore satisfies Store without touching the filesystem. Flush is a
// no-op; everything else behaves like JSONStore.
type MemoryStore struct {
	doc    entry.Document
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Entries() []entry.TimeEntry {
	return s.doc.Entries
}

func (s *MemoryStore) BrainstormNotes() []entry.BrainstormNote {
	return s.doc.Brainstorm
}

func (s *MemoryStore) Append(e entry.TimeEntry) entry.TimeEntry {
	e.ID = s.nextID
	s.nextID++
	s.doc.Entries = append(s.doc.Entries, e)
	return e
}

func (s *MemoryStore) AppendBrainstorm(n entry.BrainstormNote) {
	s.doc.Brainstorm = append(s.doc.Brainstorm, n)
}

func (s *MemoryStore) Remove(id int64) error {
	for i, e := range s.doc.Entries {
		if e.ID == id {
			s.doc.Entries = append(s.doc.Entries[:i], s.doc.Entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

func (s *MemoryStore) Query(start, end time.Time) []entry.TimeEntry {
	return queryEntries(s.doc.Entries, start, end)
}

func (s *MemoryStore) Flush() error {
	return nil
}
