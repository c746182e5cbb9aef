package ps

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v6/util"
	json "github.com/goccy/go-json"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
)

const (
	databaseExt = ".json"
	scriptExt   = ".sql"
)

func databasePath(name string) string {
	return name + databaseExt
}

// Save writes the database to <name>.json, replacing any previous version
// in a single rename. With history enabled it returns the transaction that
// now holds the saved file; otherwise the zero Transaction.
func (p *Persistence) Save(database *db.Database) (Transaction, error) {
	if err := p.ensureInitialized(); err != nil {
		return Transaction{}, err
	}
	if err := validateName(database.Name()); err != nil {
		return Transaction{}, err
	}

	data, err := json.Marshal(database.Stores())
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to marshal database %s: %w", database.Name(), err)
	}

	path := databasePath(database.Name())
	if err := p.writeAtomic(path, data); err != nil {
		return Transaction{}, err
	}
	p.logger.Debugw("saved database", "database", database.Name(), "stores", database.Len(), "bytes", len(data))

	if !p.HasHistory() {
		return Transaction{}, nil
	}
	return p.commit(path, fmt.Sprintf("Saving database %s", database.Name()))
}

// Load reads <name>.json back into a database.
func (p *Persistence) Load(name string) (*db.Database, error) {
	if err := p.ensureInitialized(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := util.ReadFile(p.fs, databasePath(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("database %s: %w", name, core.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: read database %s: %v", core.ErrIO, name, err)
	}

	database, err := decodeDatabase(name, data)
	if err != nil {
		return nil, err
	}
	p.logger.Debugw("loaded database", "database", name, "stores", database.Len())
	return database, nil
}

func decodeDatabase(name string, data []byte) (*db.Database, error) {
	var stores map[string]*db.Store
	if err := json.Unmarshal(data, &stores); err != nil {
		return nil, fmt.Errorf("%w: database %s: %v", core.ErrDeserialization, name, err)
	}
	if stores == nil {
		return nil, fmt.Errorf("%w: database %s is not an object", core.ErrDeserialization, name)
	}
	for storeName, store := range stores {
		if store == nil {
			return nil, fmt.Errorf("%w: store %s is null", core.ErrDeserialization, storeName)
		}
	}
	return db.NewDatabaseWithStores(name, stores), nil
}

func (p *Persistence) Exists(name string) bool {
	if !p.IsInitialized() || validateName(name) != nil {
		return false
	}
	_, err := p.fs.Stat(databasePath(name))
	return err == nil
}

// ListDatabases returns the names of the saved databases in order.
func (p *Persistence) ListDatabases() []string {
	if !p.IsInitialized() {
		return nil
	}
	entries, err := p.fs.ReadDir("/")
	if err != nil {
		return nil
	}

	var databases []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), databaseExt); ok && name != "" {
			databases = append(databases, name)
		}
	}
	sort.Strings(databases)
	return databases
}

// writeAtomic writes data to a hidden file beside path and renames it over
// path, so readers see either the old or the new content.
func (p *Persistence) writeAtomic(path string, data []byte) error {
	tmpName := "." + path + ".tmp"
	tmp, err := p.fs.Create(tmpName)
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %v", core.ErrIO, path, err)
	}

	if err := writeAndClose(tmp, data); err != nil {
		_ = p.fs.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", core.ErrIO, path, err)
	}
	if err := p.fs.Rename(tmpName, path); err != nil {
		_ = p.fs.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", core.ErrIO, path, err)
	}
	return nil
}

func writeAndClose(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
