package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

// FileCollection stores the whole collection as one pretty-printed JSON array.
// The file is read on every call and rewritten in full on every write.
// Use one FileCollection per path; the mutex only serialises callers sharing the value.
type FileCollection struct {
	mu   sync.Mutex
	path string
}

// NewFileCollection binds a collection to path. The file is created lazily.
func NewFileCollection(path string) *FileCollection {
	return &FileCollection{path: path}
}

// Path returns the snapshot location.
func (f *FileCollection) Path() string {
	return f.path
}

func (f *FileCollection) List(_ context.Context) ([]domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	docs, err := f.load()
	if err != nil {
		return nil, err
	}
	return positionalRecords(docs), nil
}

func (f *FileCollection) Insert(_ context.Context, doc domain.Document) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	docs, err := f.load()
	if err != nil {
		return "", err
	}
	docs = append(docs, doc)
	if err := f.save(docs); err != nil {
		return "", err
	}
	return strconv.Itoa(len(docs) - 1), nil
}

// Replace overwrites the document at id. An unresolvable id is a silent no-op.
func (f *FileCollection) Replace(_ context.Context, id string, doc domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	docs, err := f.load()
	if err != nil {
		return err
	}
	idx, err := parseIndex(id, len(docs))
	if err != nil {
		return nil
	}
	docs[idx] = doc
	return f.save(docs)
}

// Remove drops the document at id. An unresolvable id is a silent no-op.
func (f *FileCollection) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	docs, err := f.load()
	if err != nil {
		return err
	}
	idx, err := parseIndex(id, len(docs))
	if err != nil {
		return nil
	}
	docs = append(docs[:idx], docs[idx+1:]...)
	return f.save(docs)
}

// Ping checks that the snapshot is readable, creating it if needed.
func (f *FileCollection) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.load()
	return err
}

func (f *FileCollection) load() ([]domain.Document, error) {
	content, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := f.save(nil); err != nil {
			return nil, err
		}
		return []domain.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var docs []domain.Document
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// save writes through a temp file and rename so readers never see a partial snapshot.
func (f *FileCollection) save(docs []domain.Document) error {
	if docs == nil {
		docs = []domain.Document{}
	}
	content, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", f.path, err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", f.path, err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
