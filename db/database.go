package db

import (
	"fmt"
	"sort"

	"github.com/nickyhof/StoreDB/core"
)

// Database is a named collection of stores.
type Database struct {
	name   string
	stores map[string]*Store
}

func NewDatabase(name string) *Database {
	return &Database{
		name:   name,
		stores: make(map[string]*Store),
	}
}

// NewDatabaseWithStores builds a database around already populated stores,
// as the persistence layer does when loading.
func NewDatabaseWithStores(name string, stores map[string]*Store) *Database {
	database := NewDatabase(name)
	for storeName, store := range stores {
		database.stores[storeName] = store
	}
	return database
}

func (d *Database) Name() string { return d.name }

func (d *Database) Len() int { return len(d.stores) }

// AddStore creates an empty store. An existing store with the same name is
// replaced.
func (d *Database) AddStore(name string, seed []string) *Store {
	store := NewStore(name, seed)
	d.stores[name] = store
	return store
}

func (d *Database) GetStore(name string) (*Store, error) {
	store, ok := d.stores[name]
	if !ok {
		return nil, fmt.Errorf("store %s: %w", name, core.ErrNotFound)
	}
	return store, nil
}

func (d *Database) HasStore(name string) bool {
	_, ok := d.stores[name]
	return ok
}

// DeleteStore removes the store if present.
func (d *Database) DeleteStore(name string) {
	delete(d.stores, name)
}

// StoreNames returns the store names in lexicographic order.
func (d *Database) StoreNames() []string {
	names := make([]string, 0, len(d.stores))
	for name := range d.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stores returns a copy of the name to store mapping. The stores themselves
// are shared.
func (d *Database) Stores() map[string]*Store {
	stores := make(map[string]*Store, len(d.stores))
	for name, store := range d.stores {
		stores[name] = store
	}
	return stores
}
