// Package store implements MongoDB-backed data access for the service.
package store

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// UserStoreIface exposes all user data operations.
// No handler MAY query the database directly; all access goes through this interface.
type UserStoreIface interface {
	EnsureIndexes(ctx context.Context) error
	NextUserIndex(ctx context.Context) (int64, error)
	Create(ctx context.Context, fullName, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, afterIndex int64, limit int) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}

// FileStoreIface exposes GridFS file operations.
type FileStoreIface interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (*FileInfo, error)
	Download(ctx context.Context, id string, w io.Writer) (*FileInfo, error)
	Stat(ctx context.Context, id string) (*FileInfo, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]*FileInfo, error)
}
