package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const stateFile = "state.json"

// DefaultDir is $BCARD_HOME, or ~/.bcard when it is unset.
func DefaultDir() (string, error) {
	if dir := os.Getenv("BCARD_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".bcard"), nil
}

// AferoStore keeps State as JSON in dir on an afero filesystem.
type AferoStore struct {
	fs  afero.Fs
	dir string
}

var _ Store = (*AferoStore)(nil)

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs, dir string) *AferoStore {
	return &AferoStore{fs: fs, dir: dir}
}

// Path is the state file location.
func (s *AferoStore) Path() string {
	return filepath.Join(s.dir, stateFile)
}

// Load reads the saved state. A missing file is the empty state.
func (s *AferoStore) Load(ctx context.Context) (State, error) {
	var st State
	b, err := afero.ReadFile(s.fs, s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("reading %s: %w", s.Path(), err)
	}
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("decoding %s: %w", s.Path(), err)
	}
	return st, nil
}

// Save writes st, readable by the owner only since it holds the token.
func (s *AferoStore) Save(ctx context.Context, st State) error {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.Path(), b, 0o600)
}
