package core

import (
	"sort"
	"strings"
)

// Record maps attribute names to scalar values.
type Record map[string]Value

func (record Record) Clone() Record {
	clone := make(Record, len(record))
	for key, value := range record {
		clone[key] = value
	}
	return clone
}

// Keys returns the attribute names in lexicographic order.
func (record Record) Keys() []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (record Record) Equal(other Record) bool {
	if len(record) != len(other) {
		return false
	}
	for key, value := range record {
		otherValue, ok := other[key]
		if !ok || !value.Equal(otherValue) {
			return false
		}
	}
	return true
}

func (record Record) String() string {
	parts := make([]string, 0, len(record))
	for _, key := range record.Keys() {
		parts = append(parts, key+": "+record[key].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
