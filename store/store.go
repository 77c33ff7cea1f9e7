package store

import (
	"fmt"

	"github.com/tetsuzan/procgo/model"
)

// DuplicateIDError indicates two source rows share a procedure ID but
// differ in content. Identical duplicate rows are deduplicated silently;
// conflicting ones are fatal at build time.
type DuplicateIDError struct {
	ProcedureID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("conflicting duplicate record for procedure ID %q", e.ProcedureID)
}

// Store is the immutable indexed record collection.
type Store struct {
	records []model.Record
	byID    map[string]model.Ordinal
	idx     *indexSet
}

// Build constructs a Store from parsed records. It is the only constructor.
//
// Rows that repeat an earlier row byte-for-byte collapse into one record;
// rows that reuse an ID with different content fail with *DuplicateIDError
// and no Store is returned.
func Build(records []model.Record) (*Store, error) {
	s := &Store{
		records: make([]model.Record, 0, len(records)),
		byID:    make(map[string]model.Ordinal, len(records)),
	}

	for _, rec := range records {
		if prev, ok := s.byID[rec.ProcedureID]; ok {
			if s.records[prev].Equal(rec) {
				continue
			}
			return nil, &DuplicateIDError{ProcedureID: rec.ProcedureID}
		}
		s.byID[rec.ProcedureID] = model.Ordinal(len(s.records))
		s.records = append(s.records, rec)
	}

	idx, err := buildIndexes(s.records)
	if err != nil {
		return nil, err
	}
	s.idx = idx
	return s, nil
}

// Get returns the record with the given procedure ID.
func (s *Store) Get(id string) (model.Record, bool) {
	ord, ok := s.byID[id]
	if !ok {
		return model.Record{}, false
	}
	return s.records[ord], true
}

// At returns the record at the given ordinal. Ordinals outside the store
// are a caller bug and panic like any slice misuse.
func (s *Store) At(ord model.Ordinal) model.Record {
	return s.records[ord]
}

// All returns every record in source order. The slice is the store's
// backing array: callers must treat it as read-only.
func (s *Store) All() []model.Record {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
