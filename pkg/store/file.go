// Package store reads and writes the flat receipts file.
//
// The format is line-oriented, two lines per record:
//
//	Name: <name>
//	Receipt: <body>
//
// Names and bodies are stored verbatim with no escaping, so a field
// containing a literal newline or one of the markers will corrupt
// parsing on the next load. This is a known limitation of the format,
// kept for compatibility with existing receipts files.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cberrors "github.com/DiegoGarzaro/cookbook-2.0/pkg/errors"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/logging"
)

const (
	namePrefix = "Name: "
	bodyPrefix = "Receipt: "
)

// Record is one persisted receipt. Ids are never written to disk; the
// catalog reassigns them on load.
type Record struct {
	Name string
	Body string
}

// Persistence defines the persistence contract for the catalog.
// Every call opens and closes the file; no handle is held between
// operations.
type Persistence interface {
	// LoadAll returns all records in file order. A missing file is
	// reported as errors.ErrNoStore, not a hard failure.
	LoadAll() ([]Record, error)
	// Append writes a single record to the end of the store,
	// creating the file if needed. Used only by add.
	Append(rec Record) error
	// RewriteAll replaces the store contents with the given records
	// in order. Used by update and delete.
	RewriteAll(recs []Record) error
}

// Load creates a Persistence backed by the flat file named in cfg.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &fileStore{path: cfg.Path()}, nil
}

type fileStore struct {
	path string
}

func (s *fileStore) LoadAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cberrors.ErrNoStore
		}
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	var (
		recs    []Record
		pending *Record
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.HasPrefix(line, namePrefix):
			if pending != nil {
				logging.Default().Warn().Str("name", pending.Name).Msg("partial receipt data discarded")
			}
			pending = &Record{Name: line[len(namePrefix):]}
		case pending != nil && strings.HasPrefix(line, bodyPrefix):
			pending.Body = line[len(bodyPrefix):]
			recs = append(recs, *pending)
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if pending != nil {
		logging.Default().Warn().Str("name", pending.Name).Msg("partial receipt data discarded")
	}
	return recs, nil
}

func (s *fileStore) Append(rec Record) error {
	f, err := s.open(os.O_APPEND)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	writeRecord(w, rec)
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("append to store: %w", err)
	}
	return f.Close()
}

func (s *fileStore) RewriteAll(recs []Record) error {
	f, err := s.open(os.O_TRUNC)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, rec := range recs {
		writeRecord(w, rec)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("rewrite store: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.Default().Debug().Int("records", len(recs)).Msg("store rewritten")
	return nil
}

func (s *fileStore) open(mode int) (*os.File, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure store directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|mode, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open store for writing: %w", err)
	}
	return f, nil
}

func writeRecord(w *bufio.Writer, rec Record) {
	w.WriteString(namePrefix)
	w.WriteString(rec.Name)
	w.WriteByte('\n')
	w.WriteString(bodyPrefix)
	w.WriteString(rec.Body)
	w.WriteByte('\n')
}
