package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/ai"
	"github.com/wellplan/advisor-api/internal/domain"
	"github.com/wellplan/advisor-api/internal/repository"
	"github.com/wellplan/advisor-api/pkg/pagination"
)

// RecommendationService generates and serves wellness recommendations.
type RecommendationService interface {
	// Generate runs one generation attempt against the selected vendor.
	Generate(ctx context.Context, profileID uuid.UUID, req *domain.GenerateRecommendationRequest) (*domain.Recommendation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
	List(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error)
}

type recommendationService struct {
	profileRepo repository.ProfileRepository
	recRepo     repository.RecommendationRepository
	providers   *ai.ProviderSet
	prompts     *ai.PromptBuilder
	debug       bool
}

// NewRecommendationService creates a new RecommendationService. debug
// enables decode diagnostics in parsing-error logs.
func NewRecommendationService(
	profileRepo repository.ProfileRepository,
	recRepo repository.RecommendationRepository,
	providers *ai.ProviderSet,
	prompts *ai.PromptBuilder,
	debug bool,
) RecommendationService {
	return &recommendationService{
		profileRepo: profileRepo,
		recRepo:     recRepo,
		providers:   providers,
		prompts:     prompts,
		debug:       debug,
	}
}

// Generate builds the prompts from the stored profile, calls the selected
// vendor, and decodes the response. The record is created PENDING before the
// vendor call and always ends COMPLETED or FAILED, never half-populated.
// No retries happen here; the caller decides whether to retry.
func (s *recommendationService) Generate(ctx context.Context, profileID uuid.UUID, req *domain.GenerateRecommendationRequest) (*domain.Recommendation, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	// Resolve the provider before touching storage so a missing credential
	// fails fast without leaving a record behind.
	provider, err := s.providers.ForVendor(req.Vendor)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = provider.DefaultModel()
	}

	rec := &domain.Recommendation{
		ProfileID: profile.ID,
		Vendor:    provider.Name(),
		Model:     model,
		Status:    domain.StatusPending,
	}
	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	result, genErr := s.generate(ctx, provider, profile, model)
	if genErr != nil {
		rec.Status = domain.StatusFailed
		rec.ErrorKind = ai.ErrorKind(genErr)
		if err := s.recRepo.Update(ctx, rec); err != nil {
			log.Printf("[recommendation] failed to mark %s as failed: %v", rec.ID, err)
		}
		return nil, genErr
	}

	rec.Status = domain.StatusCompleted
	rec.Result = result
	if err := s.recRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *recommendationService) generate(ctx context.Context, provider ai.Provider, profile *domain.Profile, model string) (*domain.RecommendationResult, error) {
	raw, err := provider.Generate(ctx, ai.GenerateRequest{
		SystemPrompt: s.prompts.SystemPrompt(),
		UserPrompt:   s.prompts.UserPrompt(profile),
		Model:        model,
	})
	if err != nil {
		return nil, err
	}

	result, err := ai.DecodeRecommendation(raw, s.debug)
	if err != nil {
		if s.debug {
			log.Printf("[recommendation] decode failed for %s: %v", provider.Name(), err)
		}
		return nil, err
	}
	return result, nil
}

func (s *recommendationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	return s.recRepo.GetByID(ctx, id)
}

func (s *recommendationService) List(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	filter.Limit = limit

	recs, err := s.recRepo.List(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	response := &domain.RecommendationListResponse{
		Data: recs,
	}

	// One extra record was fetched to detect a next page.
	if len(recs) > limit {
		response.Data = recs[:limit]
		last := response.Data[len(response.Data)-1]
		cursor := pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		response.Pagination.NextCursor = cursor.Encode()
		response.Pagination.HasMore = true
	}

	if response.Data == nil {
		response.Data = []domain.Recommendation{}
	}

	return response, nil
}
