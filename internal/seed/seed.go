package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/domain"
	"gorm.io/gorm"
)

// Run seeds the database with sample profiles and one completed
// recommendation. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Recommendation{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	profiles := []domain.Profile{
		{
			ID:                uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Age:               34,
			Sex:               domain.SexMale,
			HeightCm:          180,
			WeightKg:          82.5,
			Conditions:        domain.StringSlice{},
			Medications:       domain.StringSlice{},
			Allergies:         domain.StringSlice{"peanuts"},
			FitnessLevel:      domain.FitnessIntermediate,
			ActivityDays:      4,
			MinutesPerSession: 60,
			DietType:          domain.DietOmnivore,
			Intolerances:      domain.StringSlice{"lactose"},
			MealsPerDay:       3,
			SleepHours:        7,
			StressLevel:       6,
			WaterLiters:       2.5,
			AlcoholPerWeek:    2,
			CaffeinePerDay:    2,
			Goals:             domain.StringSlice{"build muscle", "improve sleep"},
			TimelineWeeks:     12,
		},
		{
			ID:                uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Age:               28,
			Sex:               domain.SexFemale,
			HeightCm:          165,
			WeightKg:          61,
			Conditions:        domain.StringSlice{"iron deficiency"},
			Medications:       domain.StringSlice{},
			Allergies:         domain.StringSlice{},
			FitnessLevel:      domain.FitnessBeginner,
			ActivityDays:      3,
			MinutesPerSession: 45,
			DietType:          domain.DietVegetarian,
			Intolerances:      domain.StringSlice{},
			MealsPerDay:       4,
			SleepHours:        6.5,
			StressLevel:       7,
			WaterLiters:       1.8,
			Goals:             domain.StringSlice{"lose fat", "more energy"},
			TimelineWeeks:     16,
		},
	}

	for _, profile := range profiles {
		if err := db.Where("id = ?", profile.ID).FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profile.ID, err)
		}
	}

	return seedSampleRecommendation(db, profiles[0].ID)
}

// seedSampleRecommendation stores one completed recommendation so the
// history endpoint has data before any vendor is configured.
func seedSampleRecommendation(db *gorm.DB, profileID uuid.UUID) error {
	rec := domain.Recommendation{
		ID:        uuid.MustParse("aaaaaaaa-1111-1111-1111-111111111111"),
		ProfileID: profileID,
		Vendor:    "anthropic",
		Model:     "claude-sonnet-4-20250514",
		Status:    domain.StatusCompleted,
		Result: &domain.RecommendationResult{
			ID:            uuid.New(),
			HealthSummary: "Overall healthy profile with a strength focus. The plans prioritize progressive overload, protein intake, and sleep consistency.",
			KeyInsights: []string{
				"Protein intake should rise to support the muscle-building goal",
				"Sleep of 7 hours is adequate but irregular stress may undermine recovery",
			},
			PriorityActions: []string{
				"Train 4 days per week following the split below",
				"Hit the daily protein target before adjusting anything else",
			},
			SupplementPlan: &domain.SupplementPlan{
				ID: uuid.New(),
				Supplements: []domain.SupplementItem{
					{
						ID:           uuid.New(),
						Name:         "Creatine Monohydrate",
						DosageAmount: 5,
						DosageUnit:   "g",
						Timing:       domain.TimingWithMeal,
						Frequency:    domain.FrequencyDaily,
						Priority:     domain.PriorityRecommended,
						Reasoning:    "Well-evidenced support for strength training adaptations",
						Evidence:     "Strong evidence across multiple meta-analyses",
						Benefits:     []string{"Improved strength", "Better training volume tolerance"},
						SideEffects:  []string{"Mild water retention"},
					},
				},
				Guidelines: []string{"Take supplements consistently for at least 8 weeks before judging effect"},
				Warnings:   []string{"Consult a physician before starting any supplement"},
			},
			LifestyleRecommendations: []string{"Keep a consistent bedtime within a 30 minute window"},
			Disclaimers:              []string{"This plan is not medical advice; consult a healthcare professional."},
			SuggestedReviewWeeks:     8,
			GeneratedAt:              time.Now().UTC(),
		},
	}

	if err := db.Where("id = ?", rec.ID).FirstOrCreate(&rec).Error; err != nil {
		return fmt.Errorf("failed to create sample recommendation: %w", err)
	}
	return nil
}
