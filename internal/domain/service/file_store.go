package service

import "io"

// FileStore abstracts the image storage used for product photos and
// profile pictures.
type FileStore interface {
	// Save stores the content under a freshly generated name derived from
	// the original filename's extension and returns that name.
	Save(src io.Reader, originalName string) (string, error)
	Remove(name string) error
}
