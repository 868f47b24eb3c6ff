// Package web exposes the JSON API: import endpoints, job polling, recipes,
// and the grocery list.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/imagestore"
)

// importService is the import surface the handlers need.
type importService interface {
	StartPDFImport(ctx context.Context, filename string, pdf []byte) (*domain.ImportJob, error)
	GetJob(ctx context.Context, id string) (*domain.ImportJob, error)
	ImportFromURL(ctx context.Context, url string) (*domain.Recipe, error)
	ImportFromText(ctx context.Context, text string) (*domain.Recipe, error)
	ImportFromPhotos(ctx context.Context, images [][]byte, mimeTypes []string) (*domain.Recipe, error)
}

type recipeRepository interface {
	List(ctx context.Context) ([]*domain.Recipe, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Recipe, error)
	ListIngredients(ctx context.Context, recipeID int64) ([]domain.ParsedIngredient, error)
	Delete(ctx context.Context, slug string) error
}

type voiceService interface {
	AddFromTranscript(ctx context.Context, transcript string) ([]domain.GroceryItem, error)
}

type listService interface {
	AddRecipe(ctx context.Context, recipeID int64, servings int) ([]domain.GroceryItem, error)
}

type groceryRepository interface {
	List(ctx context.Context) ([]domain.GroceryItem, error)
	CreateBatch(ctx context.Context, items []domain.GroceryItem) ([]domain.GroceryItem, error)
	CategoryIDByName(ctx context.Context, name string) (*int64, error)
	SetChecked(ctx context.Context, id int64, checked bool) error
	ClearChecked(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

type Server struct {
	importer  importService
	recipes   recipeRepository
	voice     voiceService
	list      listService
	groceries groceryRepository
	images    imagestore.ImageStore
	mux       *http.ServeMux
	logger    *slog.Logger
}

func NewServer(
	imp importService,
	recipes recipeRepository,
	voice voiceService,
	list listService,
	groceries groceryRepository,
	images imagestore.ImageStore,
	logger *slog.Logger,
) *Server {
	s := &Server{
		importer:  imp,
		recipes:   recipes,
		voice:     voice,
		list:      list,
		groceries: groceries,
		images:    images,
		mux:       http.NewServeMux(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /api/import/pdf", s.handleImportPDF)
	s.mux.HandleFunc("GET /api/import/jobs/{id}", s.handleGetJob)
	s.mux.HandleFunc("POST /api/import/url", s.handleImportURL)
	s.mux.HandleFunc("POST /api/import/text", s.handleImportText)
	s.mux.HandleFunc("POST /api/import/photos", s.handleImportPhotos)

	s.mux.HandleFunc("GET /api/recipes", s.handleListRecipes)
	s.mux.HandleFunc("GET /api/recipes/{slug}", s.handleGetRecipe)
	s.mux.HandleFunc("GET /api/recipes/{slug}/scaled", s.handleScaledRecipe)
	s.mux.HandleFunc("DELETE /api/recipes/{slug}", s.handleDeleteRecipe)

	s.mux.HandleFunc("POST /api/grocery/voice", s.handleGroceryVoice)
	s.mux.HandleFunc("POST /api/grocery/from-recipe", s.handleGroceryFromRecipe)
	s.mux.HandleFunc("GET /api/grocery/items", s.handleListGroceries)
	s.mux.HandleFunc("POST /api/grocery/items", s.handleCreateGroceries)
	s.mux.HandleFunc("POST /api/grocery/items/{id}/check", s.handleCheckGrocery)
	s.mux.HandleFunc("DELETE /api/grocery/items/checked", s.handleClearChecked)
	s.mux.HandleFunc("DELETE /api/grocery/items", s.handleClearAll)

	s.mux.HandleFunc("GET /images/{name...}", s.handleGetImage)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
