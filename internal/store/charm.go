// ABOUTME: Charm KV slot store with automatic cloud sync.
// ABOUTME: Data is E2E encrypted with the user's SSH key before upload.
package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "fittrack"
	charmHost   = "charm.2389.dev"
)

// CharmStore persists slots in Charm KV and syncs them across devices
// after every write.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the Charm KV database, pulling remote data on startup
// when the database is writable.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	s := &CharmStore{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return s, nil
}

// Get returns the blob stored in the slot.
func (s *CharmStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, err := s.kv.Get([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return value, nil
}

// Set writes the slot and syncs to Charm Cloud.
func (s *CharmStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Set([]byte(key), value); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes the slot and syncs to Charm Cloud.
func (s *CharmStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Delete([]byte(key)); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process holds the lock.
func (s *CharmStore) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *CharmStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}

// ID returns the Charm user ID for the current account.
func (s *CharmStore) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// syncIfEnabled calls Sync if autoSync is enabled. Callers hold the lock.
func (s *CharmStore) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}
