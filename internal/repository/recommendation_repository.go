package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/domain"
	"github.com/wellplan/advisor-api/pkg/pagination"
	"gorm.io/gorm"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
	Update(ctx context.Context, rec *domain.Recommendation) error
	List(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) Update(ctx context.Context, rec *domain.Recommendation) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recommendationRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error) {
	query := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records older than the cursor, tie-broken by id
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var recs []domain.Recommendation
	if err := query.Find(&recs).Error; err != nil {
		return nil, err
	}

	return recs, nil
}
