package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wouterdom/kookboek/internal/domain"
)

func TestJobStoreCreate(t *testing.T) {
	jobs := NewJobStore(openTestDB(t))
	ctx := context.Background()

	job, err := jobs.Create(ctx, "job-1", "kookboek.pdf", 12345)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, "kookboek.pdf", job.Filename)
	assert.Equal(t, int64(12345), job.FileSize)
	assert.Equal(t, domain.JobProcessing, job.Status)
	assert.Zero(t, job.RecipesFound)
	assert.Zero(t, job.RecipesImported)
	assert.Empty(t, job.ErrorMessage)
	assert.Nil(t, job.CompletedAt)
}

func TestJobStoreGetByIDMissing(t *testing.T) {
	jobs := NewJobStore(openTestDB(t))

	job, err := jobs.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestJobStoreComplete(t *testing.T) {
	jobs := NewJobStore(openTestDB(t))
	ctx := context.Background()

	_, err := jobs.Create(ctx, "job-2", "boek.pdf", 1)
	require.NoError(t, err)

	require.NoError(t, jobs.SetFound(ctx, "job-2", 3))
	require.NoError(t, jobs.Complete(ctx, "job-2", 2))

	job, err := jobs.GetByID(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	assert.Equal(t, 3, job.RecipesFound)
	assert.Equal(t, 2, job.RecipesImported)
	assert.Empty(t, job.ErrorMessage)
	assert.NotNil(t, job.CompletedAt)
}

func TestJobStoreFail(t *testing.T) {
	jobs := NewJobStore(openTestDB(t))
	ctx := context.Background()

	_, err := jobs.Create(ctx, "job-3", "boek.pdf", 1)
	require.NoError(t, err)

	require.NoError(t, jobs.Fail(ctx, "job-3", "geen JSON gevonden"))

	job, err := jobs.GetByID(ctx, "job-3")
	require.NoError(t, err)
	assert.Equal(t, domain.JobFailed, job.Status)
	assert.Equal(t, "geen JSON gevonden", job.ErrorMessage)
	assert.NotNil(t, job.CompletedAt)
}
