package ai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wellplan/advisor-api/internal/domain"
)

// snippetLen bounds the head/tail excerpt attached to debug diagnostics.
const snippetLen = 200

// Wire shapes mirroring the schema the system prompt dictates, built from
// the tolerant coercion types. Decoding is all-or-nothing at the root:
// invalid JSON or a non-object root fails the call, while malformed leaves
// degrade to defaults.

type wireRecommendation struct {
	ID                       flexID              `json:"id"`
	HealthSummary            flexString          `json:"healthSummary"`
	KeyInsights              stringList          `json:"keyInsights"`
	PriorityActions          stringList          `json:"priorityActions"`
	SupplementPlan           *wireSupplementPlan `json:"supplementPlan"`
	WorkoutPlan              *wireWorkoutPlan    `json:"workoutPlan"`
	DietPlan                 *wireDietPlan       `json:"dietPlan"`
	LifestyleRecommendations stringList          `json:"lifestyleRecommendations"`
	Disclaimers              stringList          `json:"disclaimers"`
	SuggestedReviewWeeks     flexInt             `json:"suggestedReviewWeeks"`
	GeneratedAt              json.RawMessage     `json:"generatedAt"`
}

type wireSupplementPlan struct {
	ID               flexID               `json:"id"`
	Supplements      []wireSupplementItem `json:"supplements"`
	Guidelines       stringList           `json:"guidelines"`
	Warnings         stringList           `json:"warnings"`
	InteractionNotes stringList           `json:"interactionNotes"`
}

type wireSupplementItem struct {
	ID                flexID     `json:"id"`
	Name              flexString `json:"name"`
	DosageAmount      flexFloat  `json:"dosageAmount"`
	DosageUnit        flexString `json:"dosageUnit"`
	Timing            flexString `json:"timing"`
	Frequency         flexString `json:"frequency"`
	Priority          flexString `json:"priority"`
	Reasoning         flexString `json:"reasoning"`
	Evidence          flexString `json:"evidence"`
	Benefits          stringList `json:"benefits"`
	SideEffects       stringList `json:"sideEffects"`
	Interactions      stringList `json:"interactions"`
	Contraindications stringList `json:"contraindications"`
	MonthlyCostUSD    flexFloat  `json:"monthlyCostUsd"`
	QualityNotes      flexString `json:"qualityNotes"`
}

type wireWorkoutPlan struct {
	ID         flexID                `json:"id"`
	Days       []wireWorkoutDay      `json:"days"`
	Guidelines wireWorkoutGuidelines `json:"guidelines"`
}

type wireWorkoutDay struct {
	ID        flexID         `json:"id"`
	DayNumber flexInt        `json:"dayNumber"`
	Focus     stringList     `json:"focus"`
	Exercises []wireExercise `json:"exercises"`
}

type wireExercise struct {
	ID           flexID     `json:"id"`
	Name         flexString `json:"name"`
	Sets         flexInt    `json:"sets"`
	Reps         flexString `json:"reps"`
	RestSeconds  flexInt    `json:"restSeconds"`
	RPE          flexFloat  `json:"rpe"`
	Instructions flexString `json:"instructions"`
	Alternatives stringList `json:"alternatives"`
}

type wireWorkoutGuidelines struct {
	Warmup      flexString `json:"warmup"`
	Cooldown    flexString `json:"cooldown"`
	RestDays    flexString `json:"restDays"`
	Progression flexString `json:"progression"`
	Equipment   stringList `json:"equipment"`
}

type wireDietPlan struct {
	ID             flexID             `json:"id"`
	MacroTargets   wireMacroTargets   `json:"macroTargets"`
	MealSchedule   []wireMealTemplate `json:"mealSchedule"`
	SampleMealPlan []wireMealDay      `json:"sampleMealPlan"`
	Guidelines     stringList         `json:"guidelines"`
}

type wireMacroTargets struct {
	CaloriesKcal flexFloat `json:"caloriesKcal"`
	ProteinG     flexFloat `json:"proteinG"`
	CarbsG       flexFloat `json:"carbsG"`
	FatG         flexFloat `json:"fatG"`
}

type wireMealTemplate struct {
	ID       flexID     `json:"id"`
	Name     flexString `json:"name"`
	TimeHint flexString `json:"timeHint"`
	Purpose  flexString `json:"purpose"`
}

type wireMealDay struct {
	ID        flexID     `json:"id"`
	DayNumber flexInt    `json:"dayNumber"`
	Meals     []wireMeal `json:"meals"`
}

type wireMeal struct {
	ID           flexID           `json:"id"`
	Name         flexString       `json:"name"`
	Ingredients  stringList       `json:"ingredients"`
	Instructions flexString       `json:"instructions"`
	Nutrition    wireMacroTargets `json:"nutrition"`
}

// DecodeRecommendation extracts the JSON payload from raw model output and
// decodes it into the domain tree. When debug is true, a decode failure
// carries diagnostic context (top-level keys present, bounded text snippet)
// intended for logging only, never for control flow.
func DecodeRecommendation(raw string, debug bool) (*domain.RecommendationResult, error) {
	candidate := ExtractJSON(raw)

	var wire wireRecommendation
	if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
		return nil, decodeError(candidate, err, debug)
	}

	if wire.HealthSummary == "" && wire.SupplementPlan == nil && wire.WorkoutPlan == nil && wire.DietPlan == nil {
		return nil, decodeError(candidate, fmt.Errorf("response has none of the expected top-level fields"), debug)
	}

	return mapRecommendation(&wire), nil
}

func decodeError(candidate string, cause error, debug bool) error {
	if !debug {
		return fmt.Errorf("%w: %v", ErrParsing, cause)
	}
	return fmt.Errorf("%w: %v (keys=%v, payload=%s)", ErrParsing, cause, topLevelKeys(candidate), snippet(candidate))
}

// topLevelKeys lists the keys actually present at the root of the candidate,
// to aid prompt-schema debugging when the decode fails.
func topLevelKeys(candidate string) []string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &m); err != nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 2*snippetLen {
		return s
	}
	return s[:snippetLen] + " ... " + s[len(s)-snippetLen:]
}

func mapRecommendation(w *wireRecommendation) *domain.RecommendationResult {
	generatedAt, err := parseFlexibleTime(w.GeneratedAt)
	if err != nil || generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	return &domain.RecommendationResult{
		ID:                       w.ID.orNew(),
		HealthSummary:            string(w.HealthSummary),
		KeyInsights:              w.KeyInsights,
		PriorityActions:          w.PriorityActions,
		SupplementPlan:           mapSupplementPlan(w.SupplementPlan),
		WorkoutPlan:              mapWorkoutPlan(w.WorkoutPlan),
		DietPlan:                 mapDietPlan(w.DietPlan),
		LifestyleRecommendations: w.LifestyleRecommendations,
		Disclaimers:              w.Disclaimers,
		SuggestedReviewWeeks:     int(w.SuggestedReviewWeeks),
		GeneratedAt:              generatedAt,
	}
}

func mapSupplementPlan(w *wireSupplementPlan) *domain.SupplementPlan {
	if w == nil {
		return nil
	}
	supplements := make([]domain.SupplementItem, 0, len(w.Supplements))
	for _, item := range w.Supplements {
		supplements = append(supplements, domain.SupplementItem{
			ID:                item.ID.orNew(),
			Name:              string(item.Name),
			DosageAmount:      float64(item.DosageAmount),
			DosageUnit:        string(item.DosageUnit),
			Timing:            domain.SupplementTiming(item.Timing),
			Frequency:         domain.SupplementFrequency(item.Frequency),
			Priority:          domain.SupplementPriority(item.Priority),
			Reasoning:         string(item.Reasoning),
			Evidence:          string(item.Evidence),
			Benefits:          item.Benefits,
			SideEffects:       item.SideEffects,
			Interactions:      item.Interactions,
			Contraindications: item.Contraindications,
			MonthlyCostUSD:    float64(item.MonthlyCostUSD),
			QualityNotes:      string(item.QualityNotes),
		})
	}
	return &domain.SupplementPlan{
		ID:               w.ID.orNew(),
		Supplements:      supplements,
		Guidelines:       w.Guidelines,
		Warnings:         w.Warnings,
		InteractionNotes: w.InteractionNotes,
	}
}

func mapWorkoutPlan(w *wireWorkoutPlan) *domain.WorkoutPlan {
	if w == nil {
		return nil
	}
	days := make([]domain.WorkoutDay, 0, len(w.Days))
	for _, day := range w.Days {
		exercises := make([]domain.Exercise, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			exercises = append(exercises, domain.Exercise{
				ID:           ex.ID.orNew(),
				Name:         string(ex.Name),
				Sets:         int(ex.Sets),
				Reps:         string(ex.Reps),
				RestSeconds:  int(ex.RestSeconds),
				RPE:          float64(ex.RPE),
				Instructions: string(ex.Instructions),
				Alternatives: ex.Alternatives,
			})
		}
		days = append(days, domain.WorkoutDay{
			ID:        day.ID.orNew(),
			DayNumber: int(day.DayNumber),
			Focus:     day.Focus,
			Exercises: exercises,
		})
	}
	return &domain.WorkoutPlan{
		ID:   w.ID.orNew(),
		Days: days,
		Guidelines: domain.WorkoutGuidelines{
			Warmup:      string(w.Guidelines.Warmup),
			Cooldown:    string(w.Guidelines.Cooldown),
			RestDays:    string(w.Guidelines.RestDays),
			Progression: string(w.Guidelines.Progression),
			Equipment:   w.Guidelines.Equipment,
		},
	}
}

func mapDietPlan(w *wireDietPlan) *domain.DietPlan {
	if w == nil {
		return nil
	}
	schedule := make([]domain.MealTemplate, 0, len(w.MealSchedule))
	for _, slot := range w.MealSchedule {
		schedule = append(schedule, domain.MealTemplate{
			ID:       slot.ID.orNew(),
			Name:     string(slot.Name),
			TimeHint: string(slot.TimeHint),
			Purpose:  string(slot.Purpose),
		})
	}
	sample := make([]domain.MealDay, 0, len(w.SampleMealPlan))
	for _, day := range w.SampleMealPlan {
		meals := make([]domain.Meal, 0, len(day.Meals))
		for _, meal := range day.Meals {
			meals = append(meals, domain.Meal{
				ID:           meal.ID.orNew(),
				Name:         string(meal.Name),
				Ingredients:  meal.Ingredients,
				Instructions: string(meal.Instructions),
				Nutrition: domain.MealNutrition{
					CaloriesKcal: float64(meal.Nutrition.CaloriesKcal),
					ProteinG:     float64(meal.Nutrition.ProteinG),
					CarbsG:       float64(meal.Nutrition.CarbsG),
					FatG:         float64(meal.Nutrition.FatG),
				},
			})
		}
		sample = append(sample, domain.MealDay{
			ID:        day.ID.orNew(),
			DayNumber: int(day.DayNumber),
			Meals:     meals,
		})
	}
	return &domain.DietPlan{
		ID: w.ID.orNew(),
		MacroTargets: domain.MacroTargets{
			CaloriesKcal: float64(w.MacroTargets.CaloriesKcal),
			ProteinG:     float64(w.MacroTargets.ProteinG),
			CarbsG:       float64(w.MacroTargets.CarbsG),
			FatG:         float64(w.MacroTargets.FatG),
		},
		MealSchedule:   schedule,
		SampleMealPlan: sample,
		Guidelines:     w.Guidelines,
	}
}
