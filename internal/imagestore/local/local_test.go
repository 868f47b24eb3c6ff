package local

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGet(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), "/images/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := s.Save(ctx, "recipe-images/appeltaart-1-abc.jpg", "image/jpeg", strings.NewReader("fakejpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/images/recipe-images/appeltaart-1-abc.jpg", url)

	r, mime, err := s.Get(ctx, "recipe-images/appeltaart-1-abc.jpg")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	assert.Equal(t, "image/jpeg", mime)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "fakejpeg", string(data))
}

func TestDelete(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), "/images")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Save(ctx, "recipe-images/soep-1-def.png", "image/png", strings.NewReader("fakepng"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "recipe-images/soep-1-def.png"))
	assert.Error(t, s.Delete(ctx, "recipe-images/soep-1-def.png"))
}

func TestRejectsTraversal(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), "/images")
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "../escape.jpg", "image/jpeg", strings.NewReader("x"))
	assert.Error(t, err)
}
