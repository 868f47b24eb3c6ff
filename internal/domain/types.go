package domain

import "time"

// Import job status values. These exact strings are part of the polling API
// contract.
const (
	JobProcessing = "processing"
	JobCompleted  = "completed"
	JobFailed     = "failed"
)

type Recipe struct {
	ID              int64
	Slug            string
	Title           string
	Description     string
	PrepTime        string
	CookTime        string
	ServingsDefault int
	Difficulty      string
	Source          string
	ImageURL        string
	ImportJobID     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ParsedIngredient is one ingredient row owned by a recipe. Scalable is set at
// creation time to whether Amount is present; order within the recipe is
// significant and preserved by OrderIndex.
type ParsedIngredient struct {
	ID            int64
	RecipeID      int64
	Name          string
	Amount        *float64
	Unit          string
	AmountDisplay string
	Scalable      bool
	Section       string
	OrderIndex    int
}

type ImportJob struct {
	ID              string
	Filename        string
	FileSize        int64
	Status          string
	RecipesFound    int
	RecipesImported int
	ErrorMessage    string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

type CategoryType struct {
	ID   int64
	Slug string
	Name string
}

type Category struct {
	ID     int64
	TypeID int64
	Slug   string
	Name   string
	Color  string
}

type GroceryCategory struct {
	ID        int64
	Name      string
	SortOrder int
}

type GroceryItem struct {
	ID             int64
	Name           string
	Amount         string
	OriginalAmount string
	CategoryID     *int64
	Category       string
	IsChecked      bool
	FromRecipeID   *int64
	FromWeekmenuID *int64
	CreatedAt      time.Time
}
