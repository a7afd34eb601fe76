// Package file implements the shift store on a line-oriented text file,
// one encoded shift per line. This is the default backend.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"turni/internal/core"
	"turni/internal/store"
)

type Store struct {
	path string
}

var _ store.Store = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the file line by line, skipping lines that are blank after
// trimming. A missing file is the first-run case and yields an empty
// collection. There is no locking: another process writing the same path
// concurrently is undefined behavior.
func (s *Store) Load(_ context.Context) ([]core.Shift, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open shifts file: %w", err)
	}
	defer f.Close()

	var shifts []core.Shift
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		shift, err := core.ParseShift(line, lineno)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read shifts file: %w", err)
	}
	return shifts, nil
}

// Save truncates and rewrites the file in one pass. There is no atomic rename
// or backup: a crash mid-write can leave a truncated store. Acceptable for
// this tool's scope, but worth knowing about.
func (s *Store) Save(_ context.Context, shifts []core.Shift) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create shifts directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open shifts file for write: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, shift := range shifts {
		if _, err := w.WriteString(shift.Record() + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write shift record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush shifts file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close shifts file: %w", err)
	}
	return nil
}
