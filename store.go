package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The store holds two named documents, each a single JSON array. The names
// and layout are inherited from the original journal and are the persisted
// contract: no version field, whole-collection replace on every write.
const (
	accountsFile = "qe_accounts.json"
	tradesFile   = "qe_trades.json"
)

// Store persists the account and trade collections in a directory.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// LoadAccounts reads the account collection. A key that was never written
// yields an empty collection, never an error.
func (s *Store) LoadAccounts() ([]Account, error) {
	return loadCollection[Account](filepath.Join(s.dir, accountsFile))
}

// SaveAccounts replaces the whole account collection.
func (s *Store) SaveAccounts(accounts []Account) error {
	return saveCollection(filepath.Join(s.dir, accountsFile), accounts)
}

// LoadTrades reads the trade collection. A key that was never written yields
// an empty collection, never an error.
func (s *Store) LoadTrades() ([]Trade, error) {
	return loadCollection[Trade](filepath.Join(s.dir, tradesFile))
}

// SaveTrades replaces the whole trade collection.
func (s *Store) SaveTrades(trades []Trade) error {
	return saveCollection(filepath.Join(s.dir, tradesFile), trades)
}

func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt document is fatal to that load only: fall back to an
		// empty collection, the single recovery policy of this design.
		log.Printf("warning, cannot parse %q, starting from an empty collection: %v", path, err)
		return nil, nil
	}
	return items, nil
}

func saveCollection[T any](path string, items []T) error {
	if items == nil {
		items = []T{} // persist "[]", not "null"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %q: %w", path, err)
	}
	return nil
}
