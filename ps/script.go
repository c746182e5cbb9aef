package ps

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v6/util"

	"github.com/nickyhof/StoreDB/core"
)

func scriptPath(name string) string {
	return name + scriptExt
}

// WriteScript stores an SQL script as <name>.sql next to the database file.
// Scripts are exports and are never committed to history.
func (p *Persistence) WriteScript(name string, script string) error {
	if err := p.ensureInitialized(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	if err := p.writeAtomic(scriptPath(name), []byte(script)); err != nil {
		return err
	}
	p.logger.Debugw("wrote script", "database", name, "bytes", len(script))
	return nil
}

func (p *Persistence) ReadScript(name string) (string, error) {
	if err := p.ensureInitialized(); err != nil {
		return "", err
	}
	if err := validateName(name); err != nil {
		return "", err
	}

	data, err := util.ReadFile(p.fs, scriptPath(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("script %s: %w", name, core.ErrNotFound)
		}
		return "", fmt.Errorf("%w: read script %s: %v", core.ErrIO, name, err)
	}
	return string(data), nil
}
