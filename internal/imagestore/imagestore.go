// Package imagestore abstracts the image CDN the catalog depends on.
// Upload/transcode internals live behind this interface; the catalog only
// owns the resulting references.
package imagestore

import "github.com/dj1alilou/windyluxury/internal/model"

type Store interface {
	Upload(data []byte, folder string) (*model.Image, error)
	Delete(publicID string) error
}
