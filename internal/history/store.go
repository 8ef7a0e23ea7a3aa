// Package history persists past computations as JSON records under the
// data directory, newest first.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Entry struct {
	Command   string    `json:"command"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Append records a completed computation. The timestamp is set here if
// the caller left it zero.
func (s *Store) Append(e Entry) error {
	if err := s.Init(); err != nil {
		return err
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	name := fmt.Sprintf("entry_%020d.json", e.Timestamp.UnixNano())
	f, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) List(limit int) ([]Entry, error) {
	files, err := os.ReadDir(s.baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, f := range files {
		if !f.IsDir() && strings.HasPrefix(f.Name(), "entry_") && strings.HasSuffix(f.Name(), ".json") {
			names = append(names, f.Name())
		}
	}
	// Zero-padded nanosecond names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.baseDir, name))
		if err != nil {
			return nil, err
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("history: corrupt entry %s: %w", name, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
