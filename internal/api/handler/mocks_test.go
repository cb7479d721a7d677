package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/domain"
	"github.com/wellplan/advisor-api/internal/langfuse"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error)
}

func (m *MockProfileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	profile := req.ToProfile()
	profile.ID = uuid.New()
	return profile, nil
}

func (m *MockProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Profile{ID: id, Sex: domain.SexMale, HeightCm: 180, WeightKg: 82.5, Age: 34}, nil
}

func (m *MockProfileService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	profile := req.ToProfile()
	profile.ID = id
	return profile, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	generateFunc func(ctx context.Context, profileID uuid.UUID, req *domain.GenerateRecommendationRequest) (*domain.Recommendation, error)
	getFunc      func(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
	listFunc     func(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error)
}

func (m *MockRecommendationService) Generate(ctx context.Context, profileID uuid.UUID, req *domain.GenerateRecommendationRequest) (*domain.Recommendation, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, profileID, req)
	}
	return &domain.Recommendation{
		ID:        uuid.New(),
		ProfileID: profileID,
		Vendor:    req.Vendor,
		Status:    domain.StatusCompleted,
		Result:    &domain.RecommendationResult{HealthSummary: "ok"},
	}, nil
}

func (m *MockRecommendationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Recommendation{ID: id, Status: domain.StatusCompleted}, nil
}

func (m *MockRecommendationService) List(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, profileID, filter)
	}
	return &domain.RecommendationListResponse{
		Data:       []domain.Recommendation{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockLangfuseClient records scores instead of sending them.
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return true }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return in.ID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
