package repository

import (
	"context"
	"database/sql"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// FileI is the file access the word bank needs.
type FileI interface {
	IsFile(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}
