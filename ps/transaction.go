package ps

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
)

// Transaction is one history commit of a database file.
type Transaction struct {
	Id      string
	When    time.Time
	Author  string // "Name <email>" format
	Message string
}

func (transaction Transaction) String() string {
	return fmt.Sprintf("Transaction{Id: %s, When: %s, Author: %s}", transaction.Id, transaction.When, transaction.Author)
}

// ShortId returns the abbreviated commit hash shown by the shell.
func (transaction Transaction) ShortId() string {
	if len(transaction.Id) > 8 {
		return transaction.Id[:8]
	}
	return transaction.Id
}

func newTransaction(commit *object.Commit) Transaction {
	author := ""
	if commit.Author.Name != "" || commit.Author.Email != "" {
		author = fmt.Sprintf("%s <%s>", commit.Author.Name, commit.Author.Email)
	}
	return Transaction{
		Id:      commit.Hash.String(),
		When:    commit.Committer.When,
		Author:  author,
		Message: commit.Message,
	}
}

// commit stages path and records it. A save that did not change the file
// produces no commit and returns the last transaction that touched path.
func (p *Persistence) commit(path string, message string) (Transaction, error) {
	wt, err := p.repo.Worktree()
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	if _, err := wt.Add(path); err != nil {
		return Transaction{}, fmt.Errorf("%w: stage %s: %v", core.ErrIO, path, err)
	}

	status, err := wt.Status()
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	if fileStatus, ok := status[path]; !ok || fileStatus.Staging == git.Unmodified {
		p.logger.Debugw("nothing to commit", "path", path)
		return p.lastTransactionFor(path)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  p.identity.Name,
			Email: p.identity.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: commit %s: %v", core.ErrIO, path, err)
	}

	commit, err := p.repo.CommitObject(hash)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	txn := newTransaction(commit)
	p.logger.Infow("committed", "path", path, "transaction", txn.ShortId())
	return txn, nil
}

func (p *Persistence) lastTransactionFor(path string) (Transaction, error) {
	if _, err := p.repo.Head(); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Transaction{}, nil
		}
		return Transaction{}, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	cIter, err := p.repo.Log(&git.LogOptions{FileName: &path})
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	defer cIter.Close()

	commit, err := cIter.Next()
	if errors.Is(err, io.EOF) {
		return Transaction{}, nil
	}
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	return newTransaction(commit), nil
}

// History lists the commits that touched the database, newest first.
func (p *Persistence) History(name string) ([]Transaction, error) {
	if err := p.ensureInitialized(); err != nil {
		return nil, err
	}
	if !p.HasHistory() {
		return nil, ErrNoHistory
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	if _, err := p.repo.Head(); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	path := databasePath(name)
	cIter, err := p.repo.Log(&git.LogOptions{FileName: &path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	defer cIter.Close()

	var transactions []Transaction
	err = cIter.ForEach(func(c *object.Commit) error {
		transactions = append(transactions, newTransaction(c))
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	return transactions, nil
}

// LoadAt reads the database as it was saved in the given transaction. A
// unique prefix of the commit hash is accepted.
func (p *Persistence) LoadAt(name string, transactionId string) (*db.Database, error) {
	if err := p.ensureInitialized(); err != nil {
		return nil, err
	}
	if !p.HasHistory() {
		return nil, ErrNoHistory
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	txn, err := p.resolveTransaction(name, transactionId)
	if err != nil {
		return nil, err
	}

	commit, err := p.repo.CommitObject(plumbing.NewHash(txn.Id))
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionId, core.ErrNotFound)
	}

	file, err := commit.File(databasePath(name))
	if err != nil {
		return nil, fmt.Errorf("database %s at %s: %w", name, txn.ShortId(), core.ErrNotFound)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	return decodeDatabase(name, []byte(contents))
}

func (p *Persistence) resolveTransaction(name string, transactionId string) (Transaction, error) {
	if transactionId == "" {
		return Transaction{}, fmt.Errorf("%w: empty transaction id", core.ErrInvalidInput)
	}

	transactions, err := p.History(name)
	if err != nil {
		return Transaction{}, err
	}

	var found []Transaction
	for _, txn := range transactions {
		if len(transactionId) <= len(txn.Id) && txn.Id[:len(transactionId)] == transactionId {
			found = append(found, txn)
		}
	}

	switch len(found) {
	case 0:
		return Transaction{}, fmt.Errorf("transaction %s: %w", transactionId, core.ErrNotFound)
	case 1:
		return found[0], nil
	}
	return Transaction{}, fmt.Errorf("%w: transaction id %s is ambiguous", core.ErrInvalidInput, transactionId)
}
