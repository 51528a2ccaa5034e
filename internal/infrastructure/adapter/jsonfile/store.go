package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/amirhossein-jamali/studrev/internal/domain/entity"
	errs "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
)

// Document is the whole persisted state. It is always read and written in full.
type Document struct {
	Users   []entity.User          `json:"users"`
	Sets    *entity.QuestionSet    `json:"sets"`
	History []entity.HistoryRecord `json:"history"`
}

func emptyDocument() *Document {
	return &Document{
		Users:   []entity.User{},
		History: []entity.HistoryRecord{},
	}
}

// Store owns the JSON file. Callers get scoped access through View and Update.
type Store struct {
	path   string
	logger coreport.Logger
	mu     sync.RWMutex
}

// Open prepares a store at path, creating the parent directory if needed.
// The file itself is created on the first Update.
func Open(path string, logger coreport.Logger) (*Store, error) {
	if path == "" {
		return nil, errs.NewStoreError("open", path, errors.New("empty path"))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.NewStoreError("open", path, err)
	}

	logger.Info("JSON store opened", map[string]any{
		"path": path,
	})

	return &Store{path: path, logger: logger}, nil
}

// Path returns the backing file location
func (s *Store) Path() string {
	return s.path
}

// Ping reports whether the document can still be read
func (s *Store) Ping(ctx context.Context) error {
	return s.View(ctx, func(*Document) error { return nil })
}

// View reads the current document and hands it to fn. Changes made by fn are discarded.
func (s *Store) View(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update reads the document, applies fn and writes the result back.
// Nothing is written when fn returns an error.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return emptyDocument(), nil
	}
	if err != nil {
		return nil, errs.NewStoreError("read", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyDocument(), nil
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		s.logger.Error("JSON store is not a valid document", map[string]any{
			"path":  s.path,
			"error": err.Error(),
		})
		return nil, errs.NewStoreError("decode", s.path, err)
	}
	if doc.Users == nil {
		doc.Users = []entity.User{}
	}
	if doc.History == nil {
		doc.History = []entity.HistoryRecord{}
	}
	return doc, nil
}

// write replaces the file atomically via a temp file in the same directory
func (s *Store) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errs.NewStoreError("encode", s.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errs.NewStoreError("write", s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.NewStoreError("write", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.NewStoreError("sync", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.NewStoreError("write", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errs.NewStoreError("rename", s.path, err)
	}

	s.logger.Debug("JSON store written", map[string]any{
		"path":  s.path,
		"bytes": len(data),
	})
	return nil
}
