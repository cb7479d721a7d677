package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/ai"
	"github.com/wellplan/advisor-api/internal/domain"
)

// MockProfileRepository is an in-memory ProfileRepository.
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = time.Now()
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[id]
	return ok, nil
}

// MockRecommendationRepository is an in-memory RecommendationRepository. It
// records every Create and Update so status transitions can be asserted.
type MockRecommendationRepository struct {
	recs       map[uuid.UUID]*domain.Recommendation
	listResult []domain.Recommendation
	created    []domain.Recommendation
	updated    []domain.Recommendation
	err        error
	updateErr  error
}

func NewMockRecommendationRepository() *MockRecommendationRepository {
	return &MockRecommendationRepository{recs: make(map[uuid.UUID]*domain.Recommendation)}
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	if m.err != nil {
		return m.err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	m.recs[rec.ID] = rec
	m.created = append(m.created, *rec)
	return nil
}

func (m *MockRecommendationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.recs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (m *MockRecommendationRepository) Update(ctx context.Context, rec *domain.Recommendation) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.recs[rec.ID] = rec
	m.updated = append(m.updated, *rec)
	return nil
}

func (m *MockRecommendationRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}

// mockProvider is a scripted ai.Provider for driving the generation flow.
type mockProvider struct {
	name       string
	configured bool
	output     string
	err        error
	lastReq    ai.GenerateRequest
	calls      int
}

func (m *mockProvider) Name() string         { return m.name }
func (m *mockProvider) Configured() bool     { return m.configured }
func (m *mockProvider) DefaultModel() string { return "default-model" }

func (m *mockProvider) Generate(_ context.Context, req ai.GenerateRequest) (string, error) {
	m.calls++
	m.lastReq = req
	return m.output, m.err
}
