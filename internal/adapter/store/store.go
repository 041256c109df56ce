// Package store persists interface records as JSON files, one per interface.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/pkg/metrics"
	"golang-ethmgr/internal/port"
	"golang-ethmgr/internal/types"
)

// ErrNotFound is returned by Load when no record exists for an interface.
var ErrNotFound = errors.New("interface record not found")

const recordPerm = 0600

// Store reads and writes persisted interface records under a directory.
type Store struct {
	dir   string
	files port.FileManager
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, files port.FileManager) (*Store, error) {
	if err := files.EnsureDir(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, files: files}, nil
}

func (s *Store) path(iface string) (string, error) {
	if iface == "" || strings.ContainsAny(iface, `/\`) || iface == "." || iface == ".." {
		return "", fmt.Errorf("invalid interface name %q", iface)
	}
	return filepath.Join(s.dir, iface+".json"), nil
}

// Load reads the record for iface.
func (s *Store) Load(iface string) (*types.InterfaceState, error) {
	state, err := s.load(iface)
	if !errors.Is(err, ErrNotFound) {
		metrics.RecordRecordOperation("load", err)
	}
	return state, err
}

func (s *Store) load(iface string) (*types.InterfaceState, error) {
	path, err := s.path(iface)
	if err != nil {
		return nil, err
	}
	if !s.files.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, iface)
	}
	data, err := s.files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	state, err := types.DecodeInterfaceState(data)
	if err != nil {
		logging.WithComponentAndInterface("store", iface).WithError(err).Error("Rejected persisted record")
		return nil, fmt.Errorf("failed to load record %s: %w", path, err)
	}
	return state, nil
}

// Save writes the record for state, keyed by its interface name. The file
// is only touched once the record has been encoded.
func (s *Store) Save(state *types.InterfaceState) error {
	err := s.save(state)
	metrics.RecordRecordOperation("save", err)
	return err
}

func (s *Store) save(state *types.InterfaceState) error {
	path, err := s.path(state.Name())
	if err != nil {
		return err
	}
	data, err := state.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode record for %s: %w", state.Name(), err)
	}
	if err := s.files.WriteFile(path, append(data, '\n'), recordPerm); err != nil {
		return err
	}
	logging.WithComponentAndInterface("store", state.Name()).WithField("path", path).Debug("Saved interface record")
	return nil
}
