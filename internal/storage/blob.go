package storage

import "io"

// BlobStore holds item media (hotspot background images and other
// prompt attachments). Keys are tenant-scoped opaque paths.
type BlobStore interface {
	Put(tenantID, key string, r io.Reader) (string, error) // returns canonical key
	Get(tenantID, key string) (io.ReadCloser, error)
	Delete(tenantID, key string) error
}
