package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/handler"
	"github.com/tagmantra/tagmantra/backend/internal/service"
)

// Test doubles for the handler's service interfaces.
// Set only the method fields your test needs.

type mockGenerateServicer struct {
	generate func(ctx context.Context, req domain.GenerationRequest, userID *uuid.UUID) (domain.GenerationResult, error)
}

func (m *mockGenerateServicer) Generate(ctx context.Context, req domain.GenerationRequest, userID *uuid.UUID) (domain.GenerationResult, error) {
	return m.generate(ctx, req, userID)
}

var _ handler.GenerateServicer = (*mockGenerateServicer)(nil)

type mockTrendingServicer struct {
	overview func(ctx context.Context, platform domain.Platform, limit int) (service.TrendingOverview, error)
}

func (m *mockTrendingServicer) Overview(ctx context.Context, platform domain.Platform, limit int) (service.TrendingOverview, error) {
	return m.overview(ctx, platform, limit)
}

var _ handler.TrendingServicer = (*mockTrendingServicer)(nil)

type mockSavedSetServicer struct {
	save   func(ctx context.Context, userID uuid.UUID, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error)
	list   func(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error)
	delete func(ctx context.Context, userID, setID uuid.UUID) error
}

func (m *mockSavedSetServicer) Save(ctx context.Context, userID uuid.UUID, set domain.SavedHashtagSet) (domain.SavedHashtagSet, error) {
	return m.save(ctx, userID, set)
}
func (m *mockSavedSetServicer) List(ctx context.Context, userID uuid.UUID) ([]domain.SavedHashtagSet, error) {
	return m.list(ctx, userID)
}
func (m *mockSavedSetServicer) Delete(ctx context.Context, userID, setID uuid.UUID) error {
	return m.delete(ctx, userID, setID)
}

var _ handler.SavedSetServicer = (*mockSavedSetServicer)(nil)

type mockAuthServicer struct {
	register func(ctx context.Context, email, name, password string) (domain.User, string, error)
	login    func(ctx context.Context, email, password string) (domain.User, string, error)
}

func (m *mockAuthServicer) Register(ctx context.Context, email, name, password string) (domain.User, string, error) {
	return m.register(ctx, email, name, password)
}
func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	return m.login(ctx, email, password)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

type mockLiveCacher struct {
	getAll  func(ctx context.Context, platform domain.Platform) []domain.LiveSample
	refresh func(ctx context.Context, platform domain.Platform) []domain.LiveSample
	suggest func(ctx context.Context, content string, platform domain.Platform) []string
}

func (m *mockLiveCacher) GetAll(ctx context.Context, platform domain.Platform) []domain.LiveSample {
	return m.getAll(ctx, platform)
}
func (m *mockLiveCacher) Refresh(ctx context.Context, platform domain.Platform) []domain.LiveSample {
	return m.refresh(ctx, platform)
}
func (m *mockLiveCacher) Suggest(ctx context.Context, content string, platform domain.Platform) []string {
	return m.suggest(ctx, content, platform)
}

var _ handler.LiveCacher = (*mockLiveCacher)(nil)

type mockSeeder struct {
	run func(ctx context.Context) (int, int, error)
}

func (m *mockSeeder) Run(ctx context.Context) (int, int, error) {
	return m.run(ctx)
}

var _ handler.Seeder = (*mockSeeder)(nil)

// ---- helpers ---------------------------------------------------------------

// serverDeps bundles the mocks a test wants to plug in; zero-value fields are
// left nil so an unexpected call panics loudly.
type serverDeps struct {
	generate handler.GenerateServicer
	trending handler.TrendingServicer
	saved    handler.SavedSetServicer
	auth     handler.AuthServicer
	live     handler.LiveCacher
	seeder   handler.Seeder
	devMode  bool
}

// newHTTPHandler wires a Server with the given mocks into a chi router the
// same way main.go does in production.
func newHTTPHandler(deps serverDeps) http.Handler {
	srv := handler.NewServer(deps.generate, deps.trending, deps.saved, deps.auth, deps.live, deps.seeder, deps.devMode)
	r := chi.NewRouter()
	r.Route("/api", srv.Routes)
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeBody unmarshals the recorded response body into a generic map.
func decodeBody(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &m))
	return m
}
