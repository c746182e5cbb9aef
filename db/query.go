package db

import (
	"fmt"
	"sort"

	"github.com/nickyhof/StoreDB/core"
)

// Entry pairs a record with its id in ordered results.
type Entry struct {
	ID     int64
	Record core.Record
}

// Filter returns the records whose value at attribute is the text value.
// The probe is always text, so numeric or boolean values never match even
// when their display form does.
func (s *Store) Filter(attribute string, value string) (map[int64]core.Record, error) {
	if !s.HasAttribute(attribute) {
		return nil, fmt.Errorf("%q in store %s: %w", attribute, s.name, core.ErrAttributeNotFound)
	}

	probe := core.Text(value)
	result := make(map[int64]core.Record)
	for id, record := range s.GetAllRecords() {
		if stored, ok := record[attribute]; ok && stored.Equal(probe) {
			result[id] = record
		}
	}
	return result, nil
}

// FilterAttributes matches records against attribute/value pairs formed by
// position: attributes[i] must hold the text values[i].
func (s *Store) FilterAttributes(attributes []string, values []string) (map[int64]core.Record, error) {
	if len(attributes) != len(values) {
		return nil, fmt.Errorf("%w: %d attributes but %d values", core.ErrInvalidInput, len(attributes), len(values))
	}

	result := make(map[int64]core.Record)
	for id, record := range s.GetAllRecords() {
		if matchesAll(record, attributes, values) {
			result[id] = record
		}
	}
	return result, nil
}

func matchesAll(record core.Record, attributes []string, values []string) bool {
	for i, attribute := range attributes {
		stored, ok := record[attribute]
		if !ok || !stored.Equal(core.Text(values[i])) {
			return false
		}
	}
	return true
}

// Query returns the records holding attribute for which "stored op value"
// holds. Records without the attribute are skipped.
func (s *Store) Query(attribute string, op core.QueryOperator, value core.Value) map[int64]core.Record {
	result := make(map[int64]core.Record)
	for id, record := range s.GetAllRecords() {
		stored, ok := record[attribute]
		if !ok {
			continue
		}
		if op.Matches(stored, value) {
			result[id] = record
		}
	}
	return result
}

// SortBy orders a snapshot of the records by attribute. The sort is stable
// over ascending ids: records missing the attribute, or holding values that
// cannot be compared, keep their relative order in both directions.
func (s *Store) SortBy(attribute string, ascending bool) []Entry {
	entries := s.Entries()

	sort.SliceStable(entries, func(i, j int) bool {
		a, aok := entries[i].Record[attribute]
		b, bok := entries[j].Record[attribute]
		if !aok || !bok {
			return false
		}
		cmp, ok := a.Compare(b)
		if !ok {
			return false
		}
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	return entries
}

// Entries returns a snapshot of the records in ascending id order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.records))
	for _, id := range s.IDs() {
		entries = append(entries, Entry{ID: id, Record: s.records[id].Clone()})
	}
	return entries
}
