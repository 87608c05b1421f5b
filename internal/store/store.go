// Package store persists per-account game records as JSON files.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/0xnurrabby/Bonsai/internal/game"
)

// FileStore keeps one JSON file per account under a data directory. Reads
// are corruption-tolerant: a missing or unparseable file yields the zero
// game.State, never an error. Writes are synchronous.
type FileStore struct {
	mu      sync.RWMutex
	dataDir string
	log     *slog.Logger
}

// New creates the data directory if needed and returns a store.
func New(dataDir string, log *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{dataDir: dataDir, log: log}, nil
}

// filePath namespaces the record by lowercased account address.
func (s *FileStore) filePath(account string) string {
	return filepath.Join(s.dataDir, "bonsai-"+strings.ToLower(account)+".json")
}

// Load returns the stored state for account, or the zero state when absent
// or corrupt.
func (s *FileStore) Load(account string) game.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath(account))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("unreadable state file, starting fresh", "account", account, "err", err)
		}
		return game.State{}
	}

	var st game.State
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Warn("corrupt state file, starting fresh", "account", account, "err", err)
		return game.State{}
	}
	return st
}

// Save writes the state for account.
func (s *FileStore) Save(account string, st game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath(account), data, 0o644)
}
