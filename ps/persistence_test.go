package ps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
)

func setupCompany(t *testing.T) *db.Database {
	t.Helper()
	database := db.NewDatabase("company")
	people := database.AddStore("people", []string{"name", "age"})
	people.AddRecord(core.Record{"name": core.Text("Alice"), "age": core.Integer(30)})
	people.AddRecord(core.Record{"name": core.Text("O'Brien"), "age": core.Float(41.5), "active": core.Bool(true)})
	if err := people.DeleteRecord(0); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}
	database.AddStore("empty", nil)
	return database
}

func assertSameDatabase(t *testing.T, want, got *db.Database) {
	t.Helper()
	if got.Name() != want.Name() {
		t.Errorf("Expected database %s, got %s", want.Name(), got.Name())
	}
	if len(got.StoreNames()) != len(want.StoreNames()) {
		t.Fatalf("Expected stores %v, got %v", want.StoreNames(), got.StoreNames())
	}
	for _, name := range want.StoreNames() {
		expected, _ := want.GetStore(name)
		actual, err := got.GetStore(name)
		if err != nil {
			t.Fatalf("Missing store %s: %v", name, err)
		}
		if actual.NextID() != expected.NextID() {
			t.Errorf("Store %s: expected next id %d, got %d", name, expected.NextID(), actual.NextID())
		}
		if len(actual.Attributes()) != len(expected.Attributes()) {
			t.Errorf("Store %s: expected attributes %v, got %v", name, expected.Attributes(), actual.Attributes())
		}
		expectedRecords := expected.GetAllRecords()
		actualRecords := actual.GetAllRecords()
		if len(actualRecords) != len(expectedRecords) {
			t.Fatalf("Store %s: expected %d records, got %d", name, len(expectedRecords), len(actualRecords))
		}
		for id, record := range expectedRecords {
			if !record.Equal(actualRecords[id]) {
				t.Errorf("Store %s record %d: expected %v, got %v", name, id, record, actualRecords[id])
			}
		}
	}
}

func TestNewMemoryPersistence(t *testing.T) {
	persistence, err := NewMemoryPersistence()
	if err != nil {
		t.Fatalf("Failed to create memory persistence: %v", err)
	}

	if !persistence.IsInitialized() {
		t.Error("Expected persistence to be initialized")
	}
	if persistence.HasHistory() {
		t.Error("Expected history to be disabled by default")
	}
}

func TestPersistenceNotInitialized(t *testing.T) {
	var persistence Persistence

	if persistence.IsInitialized() {
		t.Error("Expected uninitialized persistence to return false")
	}

	err := persistence.ensureInitialized()
	if err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if _, err := persistence.Load("company"); err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized from Load, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	persistence, err := NewMemoryPersistence()
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}

	database := setupCompany(t)
	if _, err := persistence.Save(database); err != nil {
		t.Fatalf("Failed to save database: %v", err)
	}

	loaded, err := persistence.Load("company")
	if err != nil {
		t.Fatalf("Failed to load database: %v", err)
	}
	assertSameDatabase(t, database, loaded)

	people, _ := loaded.GetStore("people")
	if id := people.AddRecord(core.Record{"name": core.Text("Carol")}); id != 2 {
		t.Errorf("Expected loaded store to continue at id 2, got %d", id)
	}
}

func TestSaveOverwrites(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	database := setupCompany(t)
	if _, err := persistence.Save(database); err != nil {
		t.Fatalf("Failed to save database: %v", err)
	}
	database.DeleteStore("empty")
	if _, err := persistence.Save(database); err != nil {
		t.Fatalf("Failed to save database: %v", err)
	}

	loaded, err := persistence.Load("company")
	if err != nil {
		t.Fatalf("Failed to load database: %v", err)
	}
	if loaded.HasStore("empty") {
		t.Error("Expected second save to replace the first")
	}
	if databases := persistence.ListDatabases(); len(databases) != 1 {
		t.Errorf("Expected temp files to be cleaned up, got %v", databases)
	}
}

func TestLoadMissing(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	_, err := persistence.Load("missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if persistence.Exists("missing") {
		t.Error("Expected missing database not to exist")
	}
}

func TestInvalidName(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	for _, name := range []string{"", "  ", "../escape", "a/b", ".."} {
		if _, err := persistence.Save(db.NewDatabase(name)); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("Save(%q): expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestFilePersistence(t *testing.T) {
	dir := t.TempDir()

	persistence, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	database := setupCompany(t)
	if _, err := persistence.Save(database); err != nil {
		t.Fatalf("Failed to save database: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "company.json")); err != nil {
		t.Fatalf("Expected company.json on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); !os.IsNotExist(err) {
		t.Error("Expected no .git directory without history")
	}

	reopened, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("Failed to reopen file persistence: %v", err)
	}
	loaded, err := reopened.Load("company")
	if err != nil {
		t.Fatalf("Failed to load database: %v", err)
	}
	assertSameDatabase(t, database, loaded)
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	persistence, _ := NewFilePersistence(dir)

	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"people": {"id": 1`},
		{"missing field", `{"people": {"id": 0, "name": "people", "attributes": []}}`},
		{"null store", `{"people": null}`},
		{"nested value", `{"people": {"id": 1, "name": "people", "attributes": ["a"], "values": {"0": {"a": {"b": 1}}}}}`},
		{"array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}
			_, err := persistence.Load("broken")
			if !errors.Is(err, core.ErrDeserialization) {
				t.Errorf("Expected ErrDeserialization, got %v", err)
			}
		})
	}
}

func TestListDatabases(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	for _, name := range []string{"zeta", "alpha"} {
		if _, err := persistence.Save(db.NewDatabase(name)); err != nil {
			t.Fatalf("Failed to save %s: %v", name, err)
		}
	}
	if err := persistence.WriteScript("alpha", "CREATE DATABASE alpha;\n"); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	databases := persistence.ListDatabases()
	if len(databases) != 2 || databases[0] != "alpha" || databases[1] != "zeta" {
		t.Errorf("Expected [alpha zeta], got %v", databases)
	}
	if !persistence.Exists("zeta") {
		t.Error("Expected zeta to exist")
	}
}

func TestWriteAndReadScript(t *testing.T) {
	persistence, _ := NewMemoryPersistence()

	script := "CREATE DATABASE company;\nDROP DATABASE company;\n"
	if err := persistence.WriteScript("company", script); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	got, err := persistence.ReadScript("company")
	if err != nil {
		t.Fatalf("Failed to read script: %v", err)
	}
	if got != script {
		t.Errorf("Expected %q, got %q", script, got)
	}

	if _, err := persistence.ReadScript("missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
