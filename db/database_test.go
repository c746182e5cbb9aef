package db

import (
	"errors"
	"testing"

	"github.com/nickyhof/StoreDB/core"
)

func TestDatabaseStores(t *testing.T) {
	database := NewDatabase("company")
	database.AddStore("people", []string{"name"})
	database.AddStore("accounts", nil)

	names := database.StoreNames()
	if len(names) != 2 || names[0] != "accounts" || names[1] != "people" {
		t.Errorf("Expected [accounts people], got %v", names)
	}

	store, err := database.GetStore("people")
	if err != nil {
		t.Fatalf("Failed to get store: %v", err)
	}
	if store.Name() != "people" {
		t.Errorf("Expected store people, got %s", store.Name())
	}

	if _, err := database.GetStore("missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAddStoreReplaces(t *testing.T) {
	database := NewDatabase("company")
	people := database.AddStore("people", []string{"name"})
	people.AddRecord(core.Record{"name": core.Text("Alice")})

	replaced := database.AddStore("people", []string{"email"})
	if replaced.Len() != 0 {
		t.Errorf("Expected replacement store to be empty, got %d records", replaced.Len())
	}
	if database.Len() != 1 {
		t.Errorf("Expected 1 store, got %d", database.Len())
	}
}

func TestDeleteStore(t *testing.T) {
	database := NewDatabase("company")
	database.AddStore("people", nil)

	database.DeleteStore("people")
	database.DeleteStore("people")

	if database.HasStore("people") {
		t.Error("Expected store to be deleted")
	}
}

func TestStoresReturnsCopy(t *testing.T) {
	database := NewDatabaseWithStores("company", map[string]*Store{
		"people": NewStore("people", nil),
	})

	stores := database.Stores()
	delete(stores, "people")

	if !database.HasStore("people") {
		t.Error("Expected Stores to return a copy of the mapping")
	}
}
