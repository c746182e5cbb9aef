package ps

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/go-git/go-git/v6/storage/memory"
	"go.uber.org/zap"

	"github.com/nickyhof/StoreDB/core"
)

var (
	ErrNotInitialized = errors.New("persistence layer not initialized")
	ErrNoHistory      = errors.New("history is not enabled")
)

// Persistence stores databases as JSON files on a billy filesystem. When
// history is enabled the filesystem is also a git work tree and every save
// becomes a commit.
type Persistence struct {
	fs       billy.Filesystem
	repo     *git.Repository
	history  bool
	identity core.Identity
	logger   *zap.SugaredLogger
}

type Option func(*Persistence)

// WithHistory records every save as a git commit authored by identity.
func WithHistory(identity core.Identity) Option {
	return func(p *Persistence) {
		p.history = true
		p.identity = identity
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(p *Persistence) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// IsInitialized returns true if the persistence layer has a filesystem
func (p *Persistence) IsInitialized() bool {
	return p != nil && p.fs != nil
}

// ensureInitialized checks if the persistence layer is initialized and returns an error if not
func (p *Persistence) ensureInitialized() error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	return nil
}

// HasHistory reports whether saves are committed to git.
func (p *Persistence) HasHistory() bool {
	return p.IsInitialized() && p.repo != nil
}

func newPersistence(fs billy.Filesystem, opts []Option) *Persistence {
	p := &Persistence{
		fs:     fs,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewMemoryPersistence(opts ...Option) (*Persistence, error) {
	wt := memfs.New()
	p := newPersistence(wt, opts)

	if p.history {
		repo, err := git.Init(memory.NewStorage(), git.WithWorkTree(wt))
		if err != nil {
			return nil, fmt.Errorf("%w: init history: %v", core.ErrIO, err)
		}
		p.repo = repo
	}

	return p, nil
}

func NewFilePersistence(baseDir string, opts ...Option) (*Persistence, error) {
	// Ensure base directory exists
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	wt := osfs.New(baseDir)
	p := newPersistence(wt, opts)
	if !p.history {
		return p, nil
	}

	fs, err := wt.Chroot(".git")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	storer := filesystem.NewStorageWithOptions(
		fs,
		cache.NewObjectLRUDefault(),
		filesystem.Options{ExclusiveAccess: true})

	var repo *git.Repository
	if _, statErr := os.Stat(fs.Root()); statErr != nil {
		// Directory doesn't exist, initialize new repo
		repo, err = git.Init(storer, git.WithWorkTree(wt))
	} else {
		// Directory exists, open existing repo
		repo, err = git.Open(storer, wt)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open history: %v", core.ErrIO, err)
	}

	p.repo = repo
	p.logger.Debugw("history enabled", "dir", baseDir, "author", p.identity.String())
	return p, nil
}

// validateName rejects names that would escape the data directory.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty database name", core.ErrInvalidInput)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: invalid database name %q", core.ErrInvalidInput, name)
	}
	return nil
}
