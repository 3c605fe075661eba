package storage

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrBadKey = errors.New("invalid blob key")

// FSStore keeps blobs on the local filesystem under base/<tenant>/<key>.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data/blobs"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

// resolve maps a tenant+key pair onto a path strictly inside base.
// Keys that clean to something outside their tenant directory (dot
// segments, absolute paths) are rejected rather than normalized.
func (s *FSStore) resolve(tenantID, key string) (string, error) {
	if tenantID == "" || key == "" {
		return "", ErrBadKey
	}
	clean := path.Clean(strings.ReplaceAll(key, "\\", "/"))
	if clean == "." || clean == ".." || path.IsAbs(clean) || strings.HasPrefix(clean, "../") {
		return "", ErrBadKey
	}
	if strings.ContainsAny(tenantID, `/\`) || strings.Contains(tenantID, "..") {
		return "", ErrBadKey
	}
	return filepath.Join(s.base, tenantID, filepath.FromSlash(clean)), nil
}

func (s *FSStore) Put(tenantID, key string, r io.Reader) (string, error) {
	dst, err := s.resolve(tenantID, key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return key, nil
}

func (s *FSStore) Get(tenantID, key string) (io.ReadCloser, error) {
	p, err := s.resolve(tenantID, key)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (s *FSStore) Delete(tenantID, key string) error {
	p, err := s.resolve(tenantID, key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
