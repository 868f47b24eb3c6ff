package importer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wouterdom/kookboek/internal/db"
	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/extract"
	"github.com/wouterdom/kookboek/internal/store"
)

type fakeExtractor struct {
	pdfFn     func(ctx context.Context, pdf []byte) ([]extract.Recipe, error)
	textFn    func(ctx context.Context, text string) (*extract.Recipe, error)
	imagesFn  func(ctx context.Context, images [][]byte, mimeTypes []string) (*extract.Recipe, error)
	groceryFn func(ctx context.Context, transcript string) ([]extract.GroceryLine, error)
}

func (f *fakeExtractor) ExtractRecipesFromPDF(ctx context.Context, pdf []byte) ([]extract.Recipe, error) {
	return f.pdfFn(ctx, pdf)
}

func (f *fakeExtractor) ExtractRecipeFromText(ctx context.Context, text string) (*extract.Recipe, error) {
	return f.textFn(ctx, text)
}

func (f *fakeExtractor) ExtractRecipeFromImages(ctx context.Context, images [][]byte, mimeTypes []string) (*extract.Recipe, error) {
	return f.imagesFn(ctx, images, mimeTypes)
}

func (f *fakeExtractor) ExtractGroceryItems(ctx context.Context, transcript string) ([]extract.GroceryLine, error) {
	return f.groceryFn(ctx, transcript)
}

type fakeFetcher struct {
	text string
	err  error
}

func (f *fakeFetcher) FetchText(ctx context.Context, url string) (string, error) {
	return f.text, f.err
}

type testEnv struct {
	db       *sql.DB
	importer *Importer
	runner   *Runner
	recipes  *store.RecipeStore
	jobs     *store.JobStore
}

func newTestEnv(t *testing.T, extractor extract.Service, fetcher pageFetcher) *testEnv {
	t.Helper()
	d, err := db.Open(t.TempDir() + "/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	runner := NewRunner(1, 4, discardLogger())
	runner.Start()
	t.Cleanup(runner.Stop)

	recipes := store.NewRecipeStore(d)
	jobs := store.NewJobStore(d)
	imp := NewImporter(recipes, jobs, store.NewCategoryStore(d),
		extractor, fetcher, nil, nil, runner, discardLogger())

	return &testEnv{db: d, importer: imp, runner: runner, recipes: recipes, jobs: jobs}
}

func pdfRecipe(title string) extract.Recipe {
	return extract.Recipe{
		Title: title,
		Ingredients: []extract.Ingredient{
			{Name: "appels", Amount: f64(4), Unit: "stuks"},
			{Name: "bloem", Amount: f64(200), Unit: "g"},
			{Name: "zout"},
		},
		Instructions: "1. Schil de appels. 2. Meng met de bloem en bak gaar.",
		Servings:     6,
		Gang:         "nagerecht",
		Uitgever:     "chloe kookt",
	}
}

func f64(v float64) *float64 { return &v }

func TestPDFImportCompletesWithPartialFailure(t *testing.T) {
	broken := pdfRecipe("")
	env := newTestEnv(t, &fakeExtractor{
		pdfFn: func(ctx context.Context, pdf []byte) ([]extract.Recipe, error) {
			return []extract.Recipe{pdfRecipe("Appeltaart"), broken, pdfRecipe("Stoofpeertjes")}, nil
		},
	}, nil)
	ctx := context.Background()

	job, err := env.importer.StartPDFImport(ctx, "kookboek.pdf", []byte("%PDF-fake"))
	require.NoError(t, err)
	assert.Equal(t, domain.JobProcessing, job.Status)

	env.runner.Stop()

	done, err := env.importer.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.Equal(t, domain.JobCompleted, done.Status)
	assert.Equal(t, 3, done.RecipesFound)
	assert.Equal(t, 2, done.RecipesImported)
	assert.Empty(t, done.ErrorMessage)
	assert.NotNil(t, done.CompletedAt)

	saved, err := env.recipes.GetBySlug(ctx, "appeltaart")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 6, saved.ServingsDefault)
	require.NotNil(t, saved.ImportJobID)
	assert.Equal(t, job.ID, *saved.ImportJobID)
}

func TestPDFImportFailsJobOnExtractionError(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{
		pdfFn: func(ctx context.Context, pdf []byte) ([]extract.Recipe, error) {
			return nil, errors.New("model returned garbage")
		},
	}, nil)
	ctx := context.Background()

	job, err := env.importer.StartPDFImport(ctx, "kookboek.pdf", []byte("%PDF-fake"))
	require.NoError(t, err)

	env.runner.Stop()

	done, err := env.importer.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobFailed, done.Status)
	assert.Contains(t, done.ErrorMessage, "model returned garbage")
	assert.NotNil(t, done.CompletedAt)
}

func TestImportFromTextLinksCategories(t *testing.T) {
	rec := pdfRecipe("Appeltaart")
	env := newTestEnv(t, &fakeExtractor{
		textFn: func(ctx context.Context, text string) (*extract.Recipe, error) {
			return &rec, nil
		},
	}, nil)
	ctx := context.Background()

	saved, err := env.importer.ImportFromText(ctx, "recepttekst")
	require.NoError(t, err)
	assert.Equal(t, "appeltaart", saved.Slug)
	assert.Nil(t, saved.ImportJobID)

	var names []string
	rows, err := env.db.QueryContext(ctx,
		`SELECT c.name FROM categories c
		 JOIN recipe_categories rc ON rc.category_id = c.id
		 WHERE rc.recipe_id = ? ORDER BY c.name`, saved.ID)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Chloé Kookt", "Nagerecht"}, names)

	ingredients, err := env.recipes.ListIngredients(ctx, saved.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "4 stuks", ingredients[0].AmountDisplay)
	assert.True(t, ingredients[0].Scalable)
	assert.False(t, ingredients[2].Scalable)
}

func TestImportSlugCollisionGetsSuffix(t *testing.T) {
	rec := pdfRecipe("Appeltaart")
	env := newTestEnv(t, &fakeExtractor{
		textFn: func(ctx context.Context, text string) (*extract.Recipe, error) {
			r := rec
			return &r, nil
		},
	}, nil)
	ctx := context.Background()

	first, err := env.importer.ImportFromText(ctx, "recepttekst")
	require.NoError(t, err)
	second, err := env.importer.ImportFromText(ctx, "recepttekst")
	require.NoError(t, err)

	assert.Equal(t, "appeltaart", first.Slug)
	assert.Regexp(t, `^appeltaart-[0-9a-z]{6}$`, second.Slug)
}

func TestImportFromTextRejectsInvalidRecipe(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{
		textFn: func(ctx context.Context, text string) (*extract.Recipe, error) {
			return &extract.Recipe{Title: "Leeg"}, nil
		},
	}, nil)

	_, err := env.importer.ImportFromText(context.Background(), "geen recept")
	assert.ErrorIs(t, err, ErrTooFewIngredients)
}

func TestImportFromURLSetsSource(t *testing.T) {
	rec := pdfRecipe("Stoofpeertjes")
	env := newTestEnv(t, &fakeExtractor{
		textFn: func(ctx context.Context, text string) (*extract.Recipe, error) {
			r := rec
			return &r, nil
		},
	}, &fakeFetcher{text: "paginatekst"})
	ctx := context.Background()

	saved, err := env.importer.ImportFromURL(ctx, "https://example.com/stoofpeertjes")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/stoofpeertjes", saved.Source)
}

func TestImportFromURLPropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("login vereist")
	env := newTestEnv(t, &fakeExtractor{}, &fakeFetcher{err: fetchErr})

	_, err := env.importer.ImportFromURL(context.Background(), "https://example.com/x")
	assert.ErrorIs(t, err, fetchErr)
}

func TestStartPDFImportFailsJobWhenQueueFull(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{}, nil)
	ctx := context.Background()

	// Block the single worker, then fill the queue behind it.
	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, env.runner.Enqueue(func() { close(started); <-release }))
	<-started
	for i := 0; i < 4; i++ {
		require.NoError(t, env.runner.Enqueue(func() {}))
	}

	_, err := env.importer.StartPDFImport(ctx, "kookboek.pdf", []byte("%PDF-fake"))
	assert.ErrorIs(t, err, ErrQueueFull)
	close(release)

	jobs, qerr := allJobs(ctx, env.db)
	require.NoError(t, qerr)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.JobFailed, jobs[0].Status)
}

// allJobs reads every job row; the polling API only exposes single jobs.
func allJobs(ctx context.Context, d *sql.DB) ([]domain.ImportJob, error) {
	rows, err := d.QueryContext(ctx, `SELECT id, status FROM import_jobs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.ImportJob
	for rows.Next() {
		var j domain.ImportJob
		if err := rows.Scan(&j.ID, &j.Status); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
