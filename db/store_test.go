package db

import (
	"errors"
	"testing"

	"github.com/nickyhof/StoreDB/core"
)

func setupPeople(t *testing.T) *Store {
	t.Helper()
	store := NewStore("people", []string{"name", "age"})
	store.AddRecord(core.Record{"name": core.Text("Alice"), "age": core.Integer(30)})
	store.AddRecord(core.Record{"name": core.Text("Bob"), "age": core.Integer(25)})
	return store
}

func TestAddRecordAssignsSequentialIDs(t *testing.T) {
	store := NewStore("people", nil)

	for want := int64(0); want < 3; want++ {
		id := store.AddRecord(core.Record{"n": core.Integer(want)})
		if id != want {
			t.Errorf("Expected id %d, got %d", want, id)
		}
	}
	if store.NextID() != 3 {
		t.Errorf("Expected next id 3, got %d", store.NextID())
	}
}

func TestAddRecordWidensAttributes(t *testing.T) {
	store := NewStore("people", []string{"name"})
	store.AddRecord(core.Record{"name": core.Text("Alice"), "email": core.Text("a@example.com")})

	got := store.Attributes()
	want := []string{"email", "name"}
	if len(got) != len(want) {
		t.Fatalf("Expected attributes %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected attributes %v, got %v", want, got)
		}
	}
}

func TestDeleteRecord(t *testing.T) {
	store := setupPeople(t)

	if err := store.DeleteRecord(0); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}
	if _, err := store.GetRecord(0); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	err := store.DeleteRecord(0)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	store := setupPeople(t)

	if err := store.DeleteRecord(1); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}
	id := store.AddRecord(core.Record{"name": core.Text("Carol")})
	if id != 2 {
		t.Errorf("Expected fresh id 2, got %d", id)
	}
}

func TestUpdateRecordKeepsID(t *testing.T) {
	store := setupPeople(t)

	err := store.UpdateRecord(1, core.Record{"name": core.Text("Robert"), "city": core.Text("Oslo")})
	if err != nil {
		t.Fatalf("Failed to update record: %v", err)
	}

	record, err := store.GetRecord(1)
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if !record["name"].Equal(core.Text("Robert")) {
		t.Errorf("Expected updated name, got %v", record)
	}
	if _, ok := record["age"]; ok {
		t.Error("Expected update to replace the whole record")
	}
	if !store.HasAttribute("city") {
		t.Error("Expected update to widen the attribute set")
	}
	if store.NextID() != 2 {
		t.Errorf("Expected next id unchanged at 2, got %d", store.NextID())
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	store := setupPeople(t)

	err := store.UpdateRecord(42, core.Record{"name": core.Text("Nobody")})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if store.HasAttribute("nobody") || store.Len() != 2 {
		t.Error("Expected failed update to leave the store untouched")
	}
}

func TestRecordsAreCopied(t *testing.T) {
	store := NewStore("people", nil)
	input := core.Record{"name": core.Text("Alice")}
	id := store.AddRecord(input)

	input["name"] = core.Text("Mallory")
	got, _ := store.GetRecord(id)
	if !got["name"].Equal(core.Text("Alice")) {
		t.Error("Expected store to keep its own copy of the input record")
	}

	got["name"] = core.Text("Eve")
	all := store.GetAllRecords()
	if !all[id]["name"].Equal(core.Text("Alice")) {
		t.Error("Expected GetRecord to return a copy")
	}
}
