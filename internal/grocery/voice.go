package grocery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/extract"
)

// groceryRepository is the subset of store.GroceryStore the services require.
type groceryRepository interface {
	CreateBatch(ctx context.Context, items []domain.GroceryItem) ([]domain.GroceryItem, error)
	List(ctx context.Context) ([]domain.GroceryItem, error)
	CategoryIDByName(ctx context.Context, name string) (*int64, error)
	UpdateAmount(ctx context.Context, id int64, amount string) error
}

// transcriptExtractor is the subset of extract.Service the voice path needs.
type transcriptExtractor interface {
	ExtractGroceryItems(ctx context.Context, transcript string) ([]extract.GroceryLine, error)
}

// VoiceService turns a dictated transcript into categorized grocery items.
// Single-shot and fast, so it runs synchronously without a job record.
type VoiceService struct {
	items     groceryRepository
	extractor transcriptExtractor
	logger    *slog.Logger
}

func NewVoiceService(items groceryRepository, extractor transcriptExtractor, logger *slog.Logger) *VoiceService {
	return &VoiceService{items: items, extractor: extractor, logger: logger}
}

// AddFromTranscript extracts items from the transcript, categorizes each by
// keyword, and persists the batch. An unresolvable category id is not an
// error; the item lands in the list uncategorized.
func (s *VoiceService) AddFromTranscript(ctx context.Context, transcript string) ([]domain.GroceryItem, error) {
	lines, err := s.extractor.ExtractGroceryItems(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to extract grocery items: %w", err)
	}

	batch := make([]domain.GroceryItem, 0, len(lines))
	for _, line := range lines {
		name := strings.TrimSpace(line.Name)
		if name == "" {
			continue
		}
		category := Categorize(name)
		categoryID, err := s.items.CategoryIDByName(ctx, category)
		if err != nil {
			s.logger.Warn("failed to resolve grocery category", "category", category, "error", err)
		}
		batch = append(batch, domain.GroceryItem{
			Name:           name,
			Amount:         line.Amount,
			OriginalAmount: line.Amount,
			CategoryID:     categoryID,
			Category:       category,
		})
	}

	created, err := s.items.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to save grocery items: %w", err)
	}
	s.logger.Info("grocery items added from transcript", "count", len(created))
	return created, nil
}
