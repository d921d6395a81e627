// Package lockstore persists lock directories to disk. The layout is
// one YAML file per locked package plus an index with a fingerprint of
// the canonical encoding, so drift can be detected without decoding
// every entry.
package lockstore

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644

	indexFilename = "lock.yaml"
	lockVersion   = 1
)

// Store implements ports.LockStore on the local filesystem.
type Store struct{}

// NewStore creates a new lock directory writer.
func NewStore() *Store { return &Store{} }

// Write persists the lock directory at path, replacing previous
// content. Entries are written in name order and the index carries an
// xxhash fingerprint over the canonical bytes, so writing the same
// lock twice produces byte-identical results.
func (s *Store) Write(ctx context.Context, path string, lock *domain.LockDir) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.RemoveAll(path); err != nil {
		return wrapWrite(err, path)
	}
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return wrapWrite(err, path)
	}

	digest := xxhash.New()
	var names []string
	for _, entry := range lock.Entries() {
		data, err := yaml.Marshal(entryToDTO(entry))
		if err != nil {
			return wrapWrite(err, path)
		}
		filename := entry.ID().String() + ".yaml"
		//nolint:gosec // entry files are world-readable by design
		if err := os.WriteFile(filepath.Join(path, filename), data, filePerm); err != nil {
			return wrapWrite(err, path)
		}
		_, _ = digest.Write(data)
		names = append(names, entry.Name)
	}

	index := indexFile{
		Version:     lockVersion,
		Fingerprint: hex.EncodeToString(digest.Sum(nil)),
		Packages:    names,
	}
	data, err := yaml.Marshal(index)
	if err != nil {
		return wrapWrite(err, path)
	}
	//nolint:gosec // the index is world-readable by design
	if err := os.WriteFile(filepath.Join(path, indexFilename), data, filePerm); err != nil {
		return wrapWrite(err, path)
	}
	return nil
}

func wrapWrite(err error, path string) error {
	lockErr := zerr.With(domain.ErrLockWrite, "path", path)
	return zerr.With(lockErr, "cause", err.Error())
}
