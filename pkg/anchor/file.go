package anchor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore persists anchor ids as JSON files in a directory, one file per
// document. This is the default backend for CLI usage, where each deck file
// is its own document.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// fileEntry is the on-disk format of one pinned anchor.
type fileEntry struct {
	DocID    string `json:"doc_id"`
	ObjectID string `json:"object_id"`
}

// Get returns the pinned anchor id for the document.
func (s *FileStore) Get(ctx context.Context, docID string) (string, bool, error) {
	data, err := os.ReadFile(s.path(docID))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt entry - treat as no pin
		_ = os.Remove(s.path(docID))
		return "", false, nil
	}
	return entry.ObjectID, true, nil
}

// Set pins an anchor id, replacing any previous pin.
func (s *FileStore) Set(ctx context.Context, docID, objectID string) error {
	data, err := json.Marshal(fileEntry{DocID: docID, ObjectID: objectID})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(docID), data, 0644)
}

// Clear removes the pinned anchor.
func (s *FileStore) Clear(ctx context.Context, docID string) error {
	err := os.Remove(s.path(docID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// path maps a document id to a stable filename.
// Document ids are often filesystem paths themselves, so they are hashed.
func (s *FileStore) path(docID string) string {
	sum := sha256.Sum256([]byte(docID))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
