package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorageClient stores uploaded images on the local filesystem under a
// single flat directory, which is also served statically.
type LocalStorageClient struct {
	dir string
}

func NewLocalStorageClient(dir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalStorageClient{dir: dir}, nil
}

func (c *LocalStorageClient) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(c.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return name, nil
}

func (c *LocalStorageClient) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(c.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c *LocalStorageClient) Dir() string {
	return c.dir
}
