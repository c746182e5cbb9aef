package db

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/nickyhof/StoreDB/core"
)

func TestStoreJSONRoundTrip(t *testing.T) {
	store := setupPeople(t)
	store.AddRecord(core.Record{"score": core.Float(30), "active": core.Bool(true)})
	if err := store.DeleteRecord(1); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}

	data, err := json.Marshal(store)
	if err != nil {
		t.Fatalf("Failed to marshal store: %v", err)
	}

	var loaded Store
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to unmarshal store: %v", err)
	}

	if loaded.Name() != "people" {
		t.Errorf("Expected name people, got %s", loaded.Name())
	}
	if loaded.NextID() != 3 {
		t.Errorf("Expected next id 3, got %d", loaded.NextID())
	}
	if len(loaded.Attributes()) != 4 {
		t.Errorf("Expected 4 attributes, got %v", loaded.Attributes())
	}

	original := store.GetAllRecords()
	restored := loaded.GetAllRecords()
	if len(original) != len(restored) {
		t.Fatalf("Expected %d records, got %d", len(original), len(restored))
	}
	for id, record := range original {
		if !record.Equal(restored[id]) {
			t.Errorf("Record %d: expected %v, got %v", id, record, restored[id])
		}
	}

	score := restored[2]["score"]
	if score.Kind() != core.FloatKind {
		t.Errorf("Expected integral float to stay a float, got %#v", score)
	}
}

func TestStoreJSONShape(t *testing.T) {
	store := NewStore("people", []string{"name"})
	store.AddRecord(core.Record{"name": core.Text("Alice")})

	data, err := json.Marshal(store)
	if err != nil {
		t.Fatalf("Failed to marshal store: %v", err)
	}

	text := string(data)
	for _, want := range []string{`"id":1`, `"name":"people"`, `"attributes":["name"]`, `"values":{"0":{"name":"Alice"}}`} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %s in %s", want, text)
		}
	}
}

func TestStoreJSONBumpsNextID(t *testing.T) {
	var store Store
	data := `{"id":0,"name":"people","attributes":[],"values":{"4":{"name":"Alice"}}}`
	if err := json.Unmarshal([]byte(data), &store); err != nil {
		t.Fatalf("Failed to unmarshal store: %v", err)
	}

	if store.NextID() != 5 {
		t.Errorf("Expected next id 5, got %d", store.NextID())
	}
	if !store.HasAttribute("name") {
		t.Error("Expected record attributes to be registered")
	}
}

func TestStoreJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", `{"name":"p","attributes":[],"values":{}}`},
		{"missing values", `{"id":0,"name":"p","attributes":[]}`},
		{"bad key", `{"id":0,"name":"p","attributes":[],"values":{"x":{}}}`},
		{"nested value", `{"id":0,"name":"p","attributes":[],"values":{"0":{"a":[1]}}}`},
		{"not json", `{"id":`},
		{"null record", `{"id":1,"name":"p","attributes":[],"values":{"0":null}}`},
		{"negative record id", `{"id":0,"name":"p","attributes":[],"values":{"-1":{}}}`},
		{"exhausted record id", `{"id":0,"name":"p","attributes":[],"values":{"9223372036854775807":{}}}`},
		{"exhausted store id", `{"id":9223372036854775807,"name":"p","attributes":[],"values":{}}`},
		{"negative store id", `{"id":-1,"name":"p","attributes":[],"values":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store Store
			err := store.UnmarshalJSON([]byte(tt.data))
			if !errors.Is(err, core.ErrDeserialization) {
				t.Errorf("Expected ErrDeserialization, got %v", err)
			}
		})
	}
}
