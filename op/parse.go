package op

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nickyhof/StoreDB/core"
)

// ParseRecord reads "attr:value, attr:value". Each pair splits at its first
// colon, so values may contain colons. Values are inferred from their text.
func ParseRecord(text string) (core.Record, error) {
	record := make(core.Record)
	for _, pair := range strings.Split(text, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		attribute, value, ok := strings.Cut(pair, ":")
		attribute = strings.TrimSpace(attribute)
		if !ok || attribute == "" {
			return nil, fmt.Errorf("%w: expected attr:value, got %q", core.ErrInvalidInput, pair)
		}
		record[attribute] = core.Infer(strings.TrimSpace(value))
	}
	if len(record) == 0 {
		return nil, fmt.Errorf("%w: record has no attributes", core.ErrInvalidInput)
	}
	return record, nil
}

// ParseList splits a comma separated list, dropping empty items.
func ParseList(text string) []string {
	var items []string
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func ParseID(text string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", core.ErrInvalidInput, text)
	}
	return id, nil
}

// ParseDirection returns true for ascending.
func ParseDirection(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "asc", "":
		return true, nil
	case "desc":
		return false, nil
	}
	return false, fmt.Errorf("%w: sort direction must be asc or desc, got %q", core.ErrInvalidInput, text)
}
