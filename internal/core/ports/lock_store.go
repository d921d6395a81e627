package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// LockStore persists a lock directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Write persists the lock directory at path, replacing any
	// previous content. Writing the same lock twice must produce
	// byte-identical results.
	Write(ctx context.Context, path string, lock *domain.LockDir) error
}
