package db

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nickyhof/StoreDB/core"
)

func TestRecordsResultDisplay(t *testing.T) {
	result := NewRecordsResult(map[int64]core.Record{
		1: {"name": core.Text("Bob")},
		0: {"name": core.Text("Alice"), "age": core.Integer(30)},
	}, "No records")

	var buf bytes.Buffer
	result.Display(&buf)
	output := buf.String()

	if !strings.Contains(output, "| id | age | name  |") {
		t.Errorf("Expected header row, got:\n%s", output)
	}
	if strings.Index(output, "Alice") > strings.Index(output, "Bob") {
		t.Errorf("Expected rows ordered by id, got:\n%s", output)
	}
	if !strings.Contains(output, "2 records") {
		t.Errorf("Expected record count, got:\n%s", output)
	}
}

func TestRecordsResultEmpty(t *testing.T) {
	result := NewRecordsResult(nil, "No records")

	var buf bytes.Buffer
	result.Display(&buf)

	if buf.String() != "No records\n" {
		t.Errorf("Expected empty message, got %q", buf.String())
	}
}

func TestMessageResultDisplay(t *testing.T) {
	var buf bytes.Buffer
	MessageResult{Message: "Saved"}.Display(&buf)
	if buf.String() != "Saved\n" {
		t.Errorf("Expected %q, got %q", "Saved\n", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0.0001, "<1ms"},
		{0.25, "250ms"},
		{2.5, "2.5s"},
		{42, "42s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%v): expected %s, got %s", tt.secs, tt.want, got)
		}
	}
}
