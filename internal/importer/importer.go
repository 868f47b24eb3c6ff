// Package importer runs the recipe ingestion pipeline: extraction,
// validation, slug generation, persistence, and category linking, either
// synchronously for single-recipe sources or as a background job for PDFs.
package importer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wouterdom/kookboek/internal/category"
	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/extract"
	"github.com/wouterdom/kookboek/internal/imagestore"
	"github.com/wouterdom/kookboek/internal/quantity"
	"github.com/wouterdom/kookboek/internal/slug"
)

// recipeRepository is the subset of store.RecipeStore the importer requires.
type recipeRepository interface {
	Create(ctx context.Context, r *domain.Recipe, ingredients []domain.ParsedIngredient) (*domain.Recipe, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	LinkCategory(ctx context.Context, recipeID, categoryID int64) error
	SetImageURL(ctx context.Context, recipeID int64, url string) error
}

// jobRepository is the subset of store.JobStore the importer requires.
type jobRepository interface {
	Create(ctx context.Context, id, filename string, fileSize int64) (*domain.ImportJob, error)
	GetByID(ctx context.Context, id string) (*domain.ImportJob, error)
	SetFound(ctx context.Context, id string, found int) error
	Complete(ctx context.Context, id string, imported int) error
	Fail(ctx context.Context, id, message string) error
}

// categoryRepository is the subset of store.CategoryStore the importer
// requires.
type categoryRepository interface {
	GetOrCreate(ctx context.Context, name, typeSlug string) (*domain.Category, error)
}

// pageFetcher downloads a recipe URL as plain text.
type pageFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// ImageGenerator produces an illustration for a recipe. Optional; imports
// work without one.
type ImageGenerator interface {
	Generate(ctx context.Context, title, description string) (data []byte, contentType string, err error)
}

type Importer struct {
	recipes    recipeRepository
	jobs       jobRepository
	categories categoryRepository
	extractor  extract.Service
	fetcher    pageFetcher
	images     imagestore.ImageStore
	imageGen   ImageGenerator
	runner     *Runner
	logger     *slog.Logger
}

func NewImporter(
	recipes recipeRepository,
	jobs jobRepository,
	categories categoryRepository,
	extractor extract.Service,
	fetcher pageFetcher,
	images imagestore.ImageStore,
	imageGen ImageGenerator,
	runner *Runner,
	logger *slog.Logger,
) *Importer {
	return &Importer{
		recipes:    recipes,
		jobs:       jobs,
		categories: categories,
		extractor:  extractor,
		fetcher:    fetcher,
		images:     images,
		imageGen:   imageGen,
		runner:     runner,
		logger:     logger,
	}
}

// StartPDFImport creates the job record and hands the PDF to the worker pool.
// The caller polls the job for progress. Callers must validate the upload is
// a PDF before calling; no job record exists for rejected uploads.
func (im *Importer) StartPDFImport(ctx context.Context, filename string, pdf []byte) (*domain.ImportJob, error) {
	job, err := im.jobs.Create(ctx, uuid.NewString(), filename, int64(len(pdf)))
	if err != nil {
		return nil, fmt.Errorf("failed to create import job: %w", err)
	}

	err = im.runner.Enqueue(func() {
		// The job outlives the upload request on purpose.
		im.runJob(context.Background(), job.ID, pdf)
	})
	if err != nil {
		if ferr := im.jobs.Fail(ctx, job.ID, "importwachtrij is vol"); ferr != nil {
			im.logger.Error("failed to fail queued-out job", "job_id", job.ID, "error", ferr)
		}
		return nil, err
	}

	im.logger.Info("pdf import queued", "job_id", job.ID, "filename", filename, "bytes", len(pdf))
	return job, nil
}

// GetJob returns the current job row for polling.
func (im *Importer) GetJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	return im.jobs.GetByID(ctx, id)
}

// runJob drives one job through the processing -> completed|failed state
// machine. Extraction failure fails the whole job (it is one call for the
// whole PDF); everything after that is per-recipe and only ever skips.
func (im *Importer) runJob(ctx context.Context, jobID string, pdf []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			im.logger.Error("import job panicked", "job_id", jobID, "panic", rec)
			if err := im.jobs.Fail(ctx, jobID, fmt.Sprintf("onverwachte fout: %v", rec)); err != nil {
				im.logger.Error("failed to mark job failed", "job_id", jobID, "error", err)
			}
		}
	}()

	im.logger.Info("import job started", "job_id", jobID)

	candidates, err := im.extractor.ExtractRecipesFromPDF(ctx, pdf)
	if err != nil {
		im.logger.Error("pdf extraction failed", "job_id", jobID, "error", err)
		if ferr := im.jobs.Fail(ctx, jobID, err.Error()); ferr != nil {
			im.logger.Error("failed to mark job failed", "job_id", jobID, "error", ferr)
		}
		return
	}

	if err := im.jobs.SetFound(ctx, jobID, len(candidates)); err != nil {
		im.logger.Error("failed to record found count", "job_id", jobID, "error", err)
	}

	imported, skipped := im.importAll(ctx, jobID, candidates)

	if err := im.jobs.Complete(ctx, jobID, imported); err != nil {
		im.logger.Error("failed to complete job", "job_id", jobID, "error", err)
		return
	}
	im.logger.Info("import job finished", "job_id", jobID,
		"found", len(candidates), "imported", imported, "skipped", skipped)
}

// itemResult is the first-class outcome of one candidate, so skip accounting
// is a value rather than a side effect of error handling.
type itemResult struct {
	Title string
	Err   error
}

// importAll folds the candidates, in source order, into imported and skipped
// counts. A failing candidate never aborts the loop.
func (im *Importer) importAll(ctx context.Context, jobID string, candidates []extract.Recipe) (imported, skipped int) {
	results := make([]itemResult, 0, len(candidates))
	for _, candidate := range candidates {
		_, err := im.importOne(ctx, &jobID, candidate)
		results = append(results, itemResult{Title: candidate.Title, Err: err})
	}

	for _, res := range results {
		if res.Err != nil {
			skipped++
			im.logger.Warn("recipe skipped", "job_id", jobID, "title", res.Title, "error", res.Err)
			continue
		}
		imported++
	}
	return imported, skipped
}

// importOne validates and persists a single extracted recipe. Category links
// and image generation soft-fail: they are logged but never block the import.
func (im *Importer) importOne(ctx context.Context, jobID *string, rec extract.Recipe) (*domain.Recipe, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}

	recipeSlug, err := im.uniqueSlug(ctx, rec.Title)
	if err != nil {
		return nil, err
	}

	servings := rec.Servings
	if servings <= 0 {
		servings = 4
	}

	recipe := &domain.Recipe{
		Slug:            recipeSlug,
		Title:           strings.TrimSpace(rec.Title),
		Description:     rec.Description,
		PrepTime:        rec.PrepTime,
		CookTime:        rec.CookTime,
		ServingsDefault: servings,
		Difficulty:      rec.Difficulty,
		Source:          rec.Source,
		ImportJobID:     jobID,
	}

	created, err := im.recipes.Create(ctx, recipe, buildIngredients(rec.Ingredients))
	if err != nil {
		return nil, fmt.Errorf("failed to persist recipe %q: %w", rec.Title, err)
	}

	im.linkGang(ctx, created, rec.Gang)
	im.linkUitgever(ctx, created, rec.Uitgever)
	im.generateImage(ctx, created)

	return created, nil
}

// uniqueSlug derives the slug from the title, appending a random suffix on
// collision. One suffix attempt only; a double collision is accepted as
// astronomically unlikely.
func (im *Importer) uniqueSlug(ctx context.Context, title string) (string, error) {
	s := slug.Make(title)
	if s == "" {
		s = "recept"
	}
	exists, err := im.recipes.SlugExists(ctx, s)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		s = slug.WithSuffix(s)
	}
	return s, nil
}

// buildIngredients maps extracted ingredients to persistable rows, skipping
// nameless entries. Scalable mirrors whether a numeric amount is present.
func buildIngredients(ingredients []extract.Ingredient) []domain.ParsedIngredient {
	rows := make([]domain.ParsedIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		rows = append(rows, domain.ParsedIngredient{
			Name:          name,
			Amount:        ing.Amount,
			Unit:          ing.Unit,
			AmountDisplay: quantity.Display(ing.Amount, ing.Unit),
			Scalable:      ing.Amount != nil,
			Section:       ing.Section,
		})
	}
	return rows
}

func (im *Importer) linkGang(ctx context.Context, recipe *domain.Recipe, raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	gang, ok := category.CanonicalizeGang(raw)
	if !ok {
		im.logger.Warn("unrecognized gang, importing without link", "recipe", recipe.Slug, "gang", raw)
		return
	}
	c, err := im.categories.GetOrCreate(ctx, gang, "gang")
	if err != nil {
		im.logger.Warn("failed to resolve gang category", "recipe", recipe.Slug, "error", err)
		return
	}
	if err := im.recipes.LinkCategory(ctx, recipe.ID, c.ID); err != nil {
		im.logger.Warn("failed to link gang", "recipe", recipe.Slug, "error", err)
	}
}

func (im *Importer) linkUitgever(ctx context.Context, recipe *domain.Recipe, raw string) {
	name := category.NormalizePublisher(raw)
	if name == "" {
		return
	}
	c, err := im.categories.GetOrCreate(ctx, name, "uitgever")
	if err != nil {
		im.logger.Warn("failed to resolve uitgever category", "recipe", recipe.Slug, "error", err)
		return
	}
	if err := im.recipes.LinkCategory(ctx, recipe.ID, c.ID); err != nil {
		im.logger.Warn("failed to link uitgever", "recipe", recipe.Slug, "error", err)
	}
}

func (im *Importer) generateImage(ctx context.Context, recipe *domain.Recipe) {
	if im.imageGen == nil || im.images == nil {
		return
	}
	data, contentType, err := im.imageGen.Generate(ctx, recipe.Title, recipe.Description)
	if err != nil {
		im.logger.Warn("image generation failed", "recipe", recipe.Slug, "error", err)
		return
	}
	url, err := im.images.Save(ctx, imagestore.ObjectName(recipe.Slug, contentType), contentType, bytes.NewReader(data))
	if err != nil {
		im.logger.Warn("failed to store image", "recipe", recipe.Slug, "error", err)
		return
	}
	if err := im.recipes.SetImageURL(ctx, recipe.ID, url); err != nil {
		im.logger.Warn("failed to set image url", "recipe", recipe.Slug, "error", err)
	}
}

// ImportFromText synchronously imports a single recipe from pasted text.
func (im *Importer) ImportFromText(ctx context.Context, text string) (*domain.Recipe, error) {
	rec, err := im.extractor.ExtractRecipeFromText(ctx, text)
	if err != nil {
		return nil, err
	}
	return im.importOne(ctx, nil, *rec)
}

// ImportFromURL fetches a recipe page and imports its recipe synchronously.
func (im *Importer) ImportFromURL(ctx context.Context, url string) (*domain.Recipe, error) {
	text, err := im.fetcher.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	rec, err := im.extractor.ExtractRecipeFromText(ctx, text)
	if err != nil {
		return nil, err
	}
	if rec.Source == "" {
		rec.Source = url
	}
	return im.importOne(ctx, nil, *rec)
}

// ImportFromPhotos imports a single recipe photographed across one or more
// images.
func (im *Importer) ImportFromPhotos(ctx context.Context, images [][]byte, mimeTypes []string) (*domain.Recipe, error) {
	rec, err := im.extractor.ExtractRecipeFromImages(ctx, images, mimeTypes)
	if err != nil {
		return nil, err
	}
	return im.importOne(ctx, nil, *rec)
}
