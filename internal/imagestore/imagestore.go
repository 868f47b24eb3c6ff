// Package imagestore is the blob-store collaborator holding recipe images.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

type ImageStore interface {
	// Save stores the blob under objectName and returns its public URL.
	Save(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Get(ctx context.Context, objectName string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, objectName string) error
}

// ObjectName builds the storage path for a recipe image:
// recipe-images/<slug>-<timestamp>-<random>.<ext>.
func ObjectName(slug, contentType string) string {
	return fmt.Sprintf("recipe-images/%s-%d-%s%s",
		slug, time.Now().UnixNano(), uuid.NewString()[:8], extFor(contentType))
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
