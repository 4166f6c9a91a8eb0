// Package handler implements the HTTP handlers for the hashtag API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (generate.go, live.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/service"
)

// GenerateServicer defines the generation operation the handler depends on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type GenerateServicer interface {
	Generate(ctx context.Context, req domain.GenerationRequest, userID *uuid.UUID) (domain.GenerationResult, error)
}

// TrendingServicer defines the trending dashboard operation.
type TrendingServicer interface {
	Overview(ctx context.Context, platform domain.Platform, limit int) (service.TrendingOverview, error)
}

// SavedSetServicer defines the saved hashtag set operations.
type SavedSetServicer interface {
	Save(ctx context.Context, userID uuid.UUID, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error)
	Delete(ctx context.Context, userID, setID uuid.UUID) error
}

// AuthServicer defines the registration and login operations.
type AuthServicer interface {
	Register(ctx context.Context, email, name, password string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// LiveCacher defines the live trending cache operations.
type LiveCacher interface {
	GetAll(ctx context.Context, platform domain.Platform) []domain.LiveSample
	Refresh(ctx context.Context, platform domain.Platform) []domain.LiveSample
	Suggest(ctx context.Context, content string, platform domain.Platform) []string
}

// Seeder loads the development sample dataset.
type Seeder interface {
	Run(ctx context.Context) (hashtags, festivals int, err error)
}

// Server holds the dependencies for all API endpoints.
// devMode gates the seeding endpoint.
type Server struct {
	generate GenerateServicer
	trending TrendingServicer
	saved    SavedSetServicer
	auth     AuthServicer
	live     LiveCacher
	seeder   Seeder
	devMode  bool
}

// NewServer constructs the Server with all its dependencies.
func NewServer(generate GenerateServicer, trending TrendingServicer, saved SavedSetServicer, auth AuthServicer, live LiveCacher, seeder Seeder, devMode bool) *Server {
	return &Server{
		generate: generate,
		trending: trending,
		saved:    saved,
		auth:     auth,
		live:     live,
		seeder:   seeder,
		devMode:  devMode,
	}
}

// Routes registers every endpoint on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/hashtags", func(r chi.Router) {
		r.Post("/generate", s.GenerateHashtags)
		r.Get("/trending", s.GetTrending)
		r.Get("/live", s.GetLive)
		r.Post("/live", s.PostLive)
		r.Post("/save", s.SaveSet)
		r.Get("/save", s.ListSets)
		r.Delete("/save", s.DeleteSet)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})

	r.Post("/seed", s.Seed)
}
