// Package filestore persists each collection as a JSON file under a data
// directory. It is the fallback backend for deployments without Postgres
// and the backend used by the test suite. A single mutex serializes all
// access, which also makes check-then-decrement safe here.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dj1alilou/windyluxury/internal/repository"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Products() repository.ProductRepository {
	return &productStore{s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orderStore{s}
}

func (s *Store) Categories() repository.CategoryRepository {
	return &categoryStore{s}
}

func (s *Store) Settings() repository.SettingsRepository {
	return &settingsStore{s}
}

// read unmarshals the collection file into v. A missing file leaves v at
// its zero value.
func (s *Store) read(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}
