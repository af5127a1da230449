// Package persist stores table layouts in a YAML file so column widths,
// visibility, sort order and scroll survive between sessions.
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/proptable"
)

// formatVersion is written to every file; files with a newer version are
// rejected instead of being silently truncated.
const formatVersion = 1

// document is the on-disk layout.
type document struct {
	Version int                              `yaml:"version"`
	Tables  map[string]*proptable.TableState `yaml:"tables"`
}

// FileStore is a proptable.StateStore backed by one YAML file holding the
// state of every table, keyed by table ID.
//
// Save is called by the table at the end of every frame; the file is only
// rewritten when the serialized document differs from what was last
// written.
type FileStore struct {
	path string

	mu      sync.Mutex
	doc     document
	written []byte
}

// Open loads path if it exists. A missing file yields an empty store; the
// file is created on the first Save that changes something.
func Open(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		doc:  document{Version: formatVersion, Tables: make(map[string]*proptable.TableState)},
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, err)
	}
	if doc.Version > formatVersion {
		return nil, fmt.Errorf("layout file %s: unsupported version %d", path, doc.Version)
	}
	for key, st := range doc.Tables {
		if st == nil {
			delete(doc.Tables, key)
		}
	}
	if doc.Tables != nil {
		s.doc.Tables = doc.Tables
	}
	s.written = data
	return s, nil
}

// Path returns the file the store writes to.
func (s *FileStore) Path() string { return s.path }

// Load implements proptable.StateStore.
func (s *FileStore) Load(key string) (*proptable.TableState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.doc.Tables[key]
	return st, ok
}

// Save implements proptable.StateStore.
func (s *FileStore) Save(key string, state *proptable.TableState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Tables[key] = state
	return s.write(false)
}

// Flush writes the file even if nothing changed since the last write.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(true)
}

// Len returns the number of tables held by the store.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doc.Tables)
}

func (s *FileStore) write(force bool) error {
	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if !force && bytes.Equal(data, s.written) {
		return nil
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}
	s.written = data
	return nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// a crash mid-write never leaves a truncated layout behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write layout: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace layout file: %w", err)
	}
	return nil
}
