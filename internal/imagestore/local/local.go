// Package local stores recipe images on the local filesystem, serving them
// from a configurable URL prefix.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalImageStore struct {
	basePath  string
	urlPrefix string
}

func NewLocalImageStore(basePath, urlPrefix string) (*LocalImageStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalImageStore{basePath: basePath, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	filePath, err := s.safeJoin(objectName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create image subdirectory: %w", err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(filePath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(filePath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return s.urlPrefix + "/" + objectName, nil
}

func (s *LocalImageStore) Get(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	filePath, err := s.safeJoin(objectName)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("image not found")
		}
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	return f, mimeFor(filePath), nil
}

func (s *LocalImageStore) Delete(ctx context.Context, objectName string) error {
	filePath, err := s.safeJoin(objectName)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image not found")
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// safeJoin resolves objectName relative to basePath and rejects directory
// traversal.
func (s *LocalImageStore) safeJoin(objectName string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, objectName))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

func mimeFor(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
