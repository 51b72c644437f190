package interfaces

import "context"

// IBlobStore stores attachment and invoice documents and returns their URI.
type IBlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, uri string) error
}
