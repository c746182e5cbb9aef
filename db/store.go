package db

import (
	"fmt"
	"sort"

	"github.com/nickyhof/StoreDB/core"
)

// Store is a named, schema-growing collection of records addressed by an
// auto-incrementing id. Ids are never reused, even after a delete.
type Store struct {
	nextID     int64
	name       string
	attributes map[string]struct{}
	records    map[int64]core.Record
}

// NewStore creates an empty store. The seed attributes are a starting point,
// not a schema: records may introduce new attributes at any time.
func NewStore(name string, seed []string) *Store {
	store := &Store{
		name:       name,
		attributes: make(map[string]struct{}, len(seed)),
		records:    make(map[int64]core.Record),
	}
	for _, attribute := range seed {
		store.attributes[attribute] = struct{}{}
	}
	return store
}

func (s *Store) Name() string { return s.name }

// NextID returns the id the next AddRecord call will assign.
func (s *Store) NextID() int64 { return s.nextID }

func (s *Store) Len() int { return len(s.records) }

// Attributes returns the known attribute names in lexicographic order.
func (s *Store) Attributes() []string {
	attributes := make([]string, 0, len(s.attributes))
	for attribute := range s.attributes {
		attributes = append(attributes, attribute)
	}
	sort.Strings(attributes)
	return attributes
}

func (s *Store) HasAttribute(attribute string) bool {
	_, ok := s.attributes[attribute]
	return ok
}

// IDs returns the ids of the current records in ascending order.
func (s *Store) IDs() []int64 {
	ids := make([]int64, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AddRecord stores a copy of record under the next id and returns that id.
// Unknown attributes widen the store's attribute set.
func (s *Store) AddRecord(record core.Record) int64 {
	id := s.nextID
	s.widen(record)
	s.records[id] = record.Clone()
	s.nextID++
	return id
}

func (s *Store) DeleteRecord(id int64) error {
	if _, ok := s.records[id]; !ok {
		return recordNotFound(id)
	}
	delete(s.records, id)
	return nil
}

// UpdateRecord replaces the record at id, keeping the id.
func (s *Store) UpdateRecord(id int64, record core.Record) error {
	if _, ok := s.records[id]; !ok {
		return recordNotFound(id)
	}
	s.widen(record)
	s.records[id] = record.Clone()
	return nil
}

// GetRecord returns a copy of the record at id.
func (s *Store) GetRecord(id int64) (core.Record, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, recordNotFound(id)
	}
	return record.Clone(), nil
}

// GetAllRecords returns a deep copy of every record keyed by id.
func (s *Store) GetAllRecords() map[int64]core.Record {
	snapshot := make(map[int64]core.Record, len(s.records))
	for id, record := range s.records {
		snapshot[id] = record.Clone()
	}
	return snapshot
}

func (s *Store) widen(record core.Record) {
	for attribute := range record {
		s.attributes[attribute] = struct{}{}
	}
}

func recordNotFound(id int64) error {
	return fmt.Errorf("record %d: %w", id, core.ErrNotFound)
}
