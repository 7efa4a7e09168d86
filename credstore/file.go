package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a [Store] backed by a JSON file on local disk. It is the
// localStorage analog for native shells: credentials written through it
// survive a full process restart.
//
// The file is rewritten atomically (temp file + rename) on every mutation
// so a crash mid-write never leaves a torn credential file.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// NewFile opens or creates the credential file at path. The parent directory
// must exist. The file is created with 0600 permissions.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("credential file path required")
	}

	f := &File{path: path, values: map[string]string{}}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.values); err != nil {
			return nil, fmt.Errorf("decode credential file: %w", err)
		}
	}

	return f, nil
}

// Get returns the stored value for key.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	return v, ok && v != ""
}

// Set stores value under key and persists immediately.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	return f.persistLocked()
}

// Clear removes key and persists immediately. Clearing an absent key is a
// no-op.
func (f *File) Clear(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.persistLocked()
}

func (f *File) persistLocked() error {
	raw, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".credstore-*")
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write credential file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod credential file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close credential file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace credential file: %w", err)
	}

	return nil
}
