// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/threesixty-dev/threesixty/schema"
)

// WorkbookLoader defines the operations needed to obtain a survey workbook.
// This allows the core pipeline to be tested without real files or network.
type WorkbookLoader interface {
	// Fetch reads the raw workbook bytes from a local path or HTTP(S) URL.
	Fetch(ctx context.Context, source string) ([]byte, error)

	// Parse decodes raw xlsx bytes into the workbook shape consumed by the
	// ingestor.
	Parse(data []byte) (*schema.Workbook, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResponseStore() ResponseStore
}

// ResponseStore defines the interface for the parsed-response cache.
// This allows mocking the store for testing.
type ResponseStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
