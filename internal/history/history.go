// Package history manages the persistent record of opened paths.
package history

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tenagusami-ms/exp/internal/types"
	"github.com/tenagusami-ms/exp/pkg/fileio"
)

// Entry records a single successful open
type Entry struct {
	Path        string `json:"path"`
	WindowsPath string `json:"windows_path"`
	OpenedAt    string `json:"opened_at"`
}

// File is the on-disk history format
type File struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// Store manages the history file
type Store struct {
	filePath string
	limit    int
	mu       sync.RWMutex
}

// New creates a new Store backed by filePath, keeping at most limit entries
func New(filePath string, limit int) (*Store, error) {
	s := &Store{filePath: filePath, limit: limit}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := fileio.ReadText(s.filePath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, types.ErrDataRead) {
		return err
	}
	return s.write(&File{Version: "1.0", Entries: []Entry{}})
}

func (s *Store) read() (*File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var f File
	if err := fileio.ReadJSON(s.filePath, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) write(f *File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmpFile := s.filePath + ".tmp"
	if err := fileio.WriteJSON(f, tmpFile); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, s.filePath); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: failed to replace history file: %v", types.ErrDataWrite, err)
	}
	return nil
}

// Record prepends an open event, trimming the file to the configured limit
func (s *Store) Record(path, windowsPath string) error {
	f, err := s.read()
	if err != nil {
		return err
	}

	entry := Entry{
		Path:        path,
		WindowsPath: windowsPath,
		OpenedAt:    time.Now().Format(time.RFC3339),
	}
	f.Entries = append([]Entry{entry}, f.Entries...)

	if s.limit > 0 && len(f.Entries) > s.limit {
		f.Entries = f.Entries[:s.limit]
	}

	return s.write(f)
}

// Recent returns up to limit most recent entries, newest first
func (s *Store) Recent(limit int) ([]Entry, error) {
	f, err := s.read()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(f.Entries) {
		return f.Entries, nil
	}
	return f.Entries[:limit], nil
}

// Clear removes all entries
func (s *Store) Clear() error {
	return s.write(&File{Version: "1.0", Entries: []Entry{}})
}
