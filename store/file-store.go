package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileStore keeps a single YAML document on disk.
type FileStore[P any] struct {
	dir  string
	name string
}

// NewFileStore creates dir when needed and returns a store for dir/name.yaml.
func NewFileStore[P any](dir, name string) (*FileStore[P], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create store dir %s", dir)
	}
	return &FileStore[P]{dir: dir, name: name}, nil
}

// Path returns the file backing the store.
func (fs *FileStore[P]) Path() string {
	return filepath.Join(fs.dir, fs.name+".yaml")
}

// Load reads the stored document. A missing file yields the zero value.
func (fs *FileStore[P]) Load() (P, error) {
	var data P
	serialized, err := os.ReadFile(fs.Path())
	if os.IsNotExist(err) {
		return data, nil
	}
	if err != nil {
		return data, errors.Wrap(err, "failed to read store")
	}
	if err := yaml.Unmarshal(serialized, &data); err != nil {
		return data, errors.Wrapf(err, "failed to parse %s", fs.Path())
	}
	return data, nil
}

// Save replaces the stored document atomically.
func (fs *FileStore[P]) Save(data P) error {
	serialized, err := yaml.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to serialize store")
	}
	tmp, err := os.CreateTemp(fs.dir, fs.name+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(serialized); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "failed to write store")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close store")
	}
	return errors.Wrap(os.Rename(tmp.Name(), fs.Path()), "failed to replace store")
}
