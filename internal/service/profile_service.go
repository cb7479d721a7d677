package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/domain"
	"github.com/wellplan/advisor-api/internal/repository"
)

// ProfileService manages health profiles.
type ProfileService interface {
	Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	profile := req.ToProfile()
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// Update replaces the questionnaire data of an existing profile. Updates are
// full replacements: the onboarding flow always submits the complete form.
func (s *profileService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	existing, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := req.ToProfile()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.profileRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
