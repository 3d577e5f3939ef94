package handler

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"teodity/internal/domain/service"
	"teodity/pkg/errors"
	"teodity/pkg/logger"
)

const (
	maxUploadFiles = 10
	maxUploadSize  = 5 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveUploads validates and stores a batch of uploaded images. On any
// failure every file stored so far is removed again, so a rejected request
// leaves no orphans on disk.
func saveUploads(store service.FileStore, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > maxUploadFiles {
		return nil, errors.BadRequest("You can upload at most 10 images!", nil)
	}

	saved := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := saveUpload(store, fh)
		if err != nil {
			discardUploads(store, saved)
			return nil, err
		}
		saved = append(saved, name)
	}
	return saved, nil
}

func saveUpload(store service.FileStore, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", errors.BadRequest("Image must not exceed 5MB!", nil)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "", errors.BadRequest("Only jpeg, jpg, png, gif and webp images are allowed!", nil)
	}

	probe, err := fh.Open()
	if err != nil {
		return "", errors.Internal("Failed to read uploaded file", err)
	}
	mtype, err := mimetype.DetectReader(probe)
	probe.Close()
	if err != nil {
		return "", errors.Internal("Failed to read uploaded file", err)
	}
	if !allowedImageTypes[mtype.String()] {
		return "", errors.BadRequest("Only jpeg, jpg, png, gif and webp images are allowed!", nil)
	}

	src, err := fh.Open()
	if err != nil {
		return "", errors.Internal("Failed to read uploaded file", err)
	}
	defer src.Close()

	return store.Save(src, fh.Filename)
}

func discardUploads(store service.FileStore, names []string) {
	for _, name := range names {
		if err := store.Remove(name); err != nil {
			logger.Error("Failed to remove uploaded file %s: %v", name, err)
		}
	}
}
