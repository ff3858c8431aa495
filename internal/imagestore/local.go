package imagestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dj1alilou/windyluxury/internal/model"

	"github.com/google/uuid"
)

// Local writes images under a directory served as static files. Public IDs
// are relative paths, so Delete maps straight back to the file.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Upload(data []byte, folder string) (*model.Image, error) {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	publicID := filepath.ToSlash(filepath.Join(folder, name))

	path := filepath.Join(l.dir, folder, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}
	return &model.Image{
		URL:      fmt.Sprintf("%s/%s", l.baseURL, publicID),
		PublicID: publicID,
	}, nil
}

// Delete removes the stored file. Public ids travel through clients
// (existingImages on product updates), so anything that would escape the
// upload dir is rejected outright.
func (l *Local) Delete(publicID string) error {
	rel := filepath.FromSlash(publicID)
	if publicID == "" || !filepath.IsLocal(rel) {
		return fmt.Errorf("invalid public id %q", publicID)
	}
	err := os.Remove(filepath.Join(l.dir, rel))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
