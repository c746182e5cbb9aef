package db

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nickyhof/StoreDB/core"
)

type ResultType int

const (
	RecordsResultType ResultType = iota
	MessageResultType
)

// Result is what a shell operation hands back for printing.
type Result interface {
	Type() ResultType
	Display(w io.Writer)
}

type RecordsResult struct {
	Entries          []Entry
	Empty            string // printed instead of a table when there are no entries
	ExecutionTimeSec float64
}

type MessageResult struct {
	Message string
}

func (result RecordsResult) Type() ResultType {
	return RecordsResultType
}

func (result MessageResult) Type() ResultType {
	return MessageResultType
}

// NewRecordsResult orders an unordered query result by id.
func NewRecordsResult(records map[int64]core.Record, empty string) RecordsResult {
	entries := make([]Entry, 0, len(records))
	for id, record := range records {
		entries = append(entries, Entry{ID: id, Record: record})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return RecordsResult{Entries: entries, Empty: empty}
}

// formatDuration formats a duration in human-readable form
func formatDuration(secs float64) string {
	if secs < 0.001 {
		return "<1ms"
	} else if secs < 1 {
		return fmt.Sprintf("%dms", int(secs*1000))
	} else if secs < 10 {
		return fmt.Sprintf("%.1fs", secs)
	}
	return fmt.Sprintf("%ds", int(secs))
}

func (result RecordsResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

// Columns returns "id" followed by every attribute present in the entries.
func (result RecordsResult) Columns() []string {
	seen := make(map[string]struct{})
	for _, entry := range result.Entries {
		for key := range entry.Record {
			seen[key] = struct{}{}
		}
	}
	attributes := make([]string, 0, len(seen))
	for key := range seen {
		attributes = append(attributes, key)
	}
	sort.Strings(attributes)
	return append([]string{"id"}, attributes...)
}

// Rows renders each entry as cells aligned with Columns. Missing attributes
// are left blank.
func (result RecordsResult) Rows() [][]string {
	columns := result.Columns()
	rows := make([][]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		row := make([]string, len(columns))
		row[0] = strconv.FormatInt(entry.ID, 10)
		for i, column := range columns[1:] {
			if value, ok := entry.Record[column]; ok {
				row[i+1] = value.String()
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (result RecordsResult) Display(w io.Writer) {
	if len(result.Entries) == 0 {
		if result.Empty != "" {
			fmt.Fprintln(w, result.Empty)
		}
		return
	}

	data := NewTable(w)
	data.Header(result.Columns())
	data.Bulk(result.Rows())
	data.Render()

	noun := "records"
	if len(result.Entries) == 1 {
		noun = "record"
	}
	fmt.Fprintf(w, "%d %s (%s)\n", len(result.Entries), noun, result.ExecutionTime())
}

func (result MessageResult) Display(w io.Writer) {
	if strings.TrimSpace(result.Message) == "" {
		return
	}
	fmt.Fprintln(w, result.Message)
}
