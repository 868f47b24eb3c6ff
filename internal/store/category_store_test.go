package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStoreGetOrCreateFindsSeeded(t *testing.T) {
	categories := NewCategoryStore(openTestDB(t))

	c, err := categories.GetOrCreate(context.Background(), "Hoofdgerecht", "gang")
	require.NoError(t, err)
	assert.Equal(t, "hoofdgerecht", c.Slug)
	assert.Equal(t, "Hoofdgerecht", c.Name)
}

func TestCategoryStoreGetOrCreateInsertsNew(t *testing.T) {
	categories := NewCategoryStore(openTestDB(t))
	ctx := context.Background()

	c, err := categories.GetOrCreate(ctx, "Chloé Kookt", "uitgever")
	require.NoError(t, err)
	assert.Equal(t, "chloe-kookt", c.Slug)
	assert.Equal(t, "#f97316", c.Color)

	// A second call must return the same row, not a duplicate.
	again, err := categories.GetOrCreate(ctx, "Chloé Kookt", "uitgever")
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
}

func TestCategoryStoreGetOrCreateSameSlugDifferentType(t *testing.T) {
	categories := NewCategoryStore(openTestDB(t))
	ctx := context.Background()

	gang, err := categories.GetOrCreate(ctx, "Lunch", "gang")
	require.NoError(t, err)
	uitgever, err := categories.GetOrCreate(ctx, "Lunch", "uitgever")
	require.NoError(t, err)
	assert.NotEqual(t, gang.ID, uitgever.ID)
}

func TestCategoryStoreUnknownType(t *testing.T) {
	categories := NewCategoryStore(openTestDB(t))

	_, err := categories.GetOrCreate(context.Background(), "X", "onbekend")
	assert.Error(t, err)
}

func TestCategoryStoreListByType(t *testing.T) {
	categories := NewCategoryStore(openTestDB(t))

	gangen, err := categories.ListByType(context.Background(), "gang")
	require.NoError(t, err)
	assert.Len(t, gangen, 6)
}
