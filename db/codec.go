package db

import (
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/nickyhof/StoreDB/core"
)

// storeDocument is the persisted shape of a Store. Record ids are object
// keys, so they travel as decimal strings.
type storeDocument struct {
	ID         *int64                 `json:"id"`
	Name       *string                `json:"name"`
	Attributes []string               `json:"attributes"`
	Values     map[string]core.Record `json:"values"`
}

func (s *Store) MarshalJSON() ([]byte, error) {
	values := make(map[string]core.Record, len(s.records))
	for id, record := range s.records {
		values[strconv.FormatInt(id, 10)] = record
	}

	nextID := s.nextID
	name := s.name
	return json.Marshal(storeDocument{
		ID:         &nextID,
		Name:       &name,
		Attributes: s.Attributes(),
		Values:     values,
	})
}

func (s *Store) UnmarshalJSON(data []byte) error {
	var document storeDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("%w: %v", core.ErrDeserialization, err)
	}
	if document.ID == nil || document.Name == nil || document.Attributes == nil || document.Values == nil {
		return fmt.Errorf("%w: store requires id, name, attributes and values", core.ErrDeserialization)
	}

	// An id of math.MaxInt64 could never be followed by another one.
	if *document.ID < 0 || *document.ID == math.MaxInt64 {
		return fmt.Errorf("%w: store id %d out of range", core.ErrDeserialization, *document.ID)
	}

	store := NewStore(*document.Name, document.Attributes)
	store.nextID = *document.ID
	for key, record := range document.Values {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: record id %q is not an integer", core.ErrDeserialization, key)
		}
		if id < 0 || id == math.MaxInt64 {
			return fmt.Errorf("%w: record id %d out of range", core.ErrDeserialization, id)
		}
		if record == nil {
			return fmt.Errorf("%w: record %d is not an object", core.ErrDeserialization, id)
		}
		store.widen(record)
		store.records[id] = record
		if id >= store.nextID {
			store.nextID = id + 1
		}
	}

	*s = *store
	return nil
}
