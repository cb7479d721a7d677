package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// RecommendationStatus tracks the lifecycle of one generation attempt.
// @Description Generation status: PENDING until the vendor call resolves,
// then COMPLETED or FAILED. Never partially populated.
type RecommendationStatus string

const (
	StatusPending   RecommendationStatus = "PENDING"
	StatusCompleted RecommendationStatus = "COMPLETED"
	StatusFailed    RecommendationStatus = "FAILED"
)

// SupplementTiming is the enumerated vocabulary for when to take a supplement.
type SupplementTiming string

const (
	TimingMorning       SupplementTiming = "MORNING"
	TimingWithMeal      SupplementTiming = "WITH_MEAL"
	TimingEmptyStomach  SupplementTiming = "EMPTY_STOMACH"
	TimingBeforeWorkout SupplementTiming = "BEFORE_WORKOUT"
	TimingAfterWorkout  SupplementTiming = "AFTER_WORKOUT"
	TimingEvening       SupplementTiming = "EVENING"
	TimingBeforeBed     SupplementTiming = "BEFORE_BED"
)

// SupplementFrequency is the enumerated vocabulary for how often to take it.
type SupplementFrequency string

const (
	FrequencyDaily         SupplementFrequency = "DAILY"
	FrequencyTwiceDaily    SupplementFrequency = "TWICE_DAILY"
	FrequencyEveryOtherDay SupplementFrequency = "EVERY_OTHER_DAY"
	FrequencyWeekly        SupplementFrequency = "WEEKLY"
	FrequencyAsNeeded      SupplementFrequency = "AS_NEEDED"
)

// SupplementPriority ranks how important a supplement is for the user's goals.
type SupplementPriority string

const (
	PriorityEssential   SupplementPriority = "ESSENTIAL"
	PriorityRecommended SupplementPriority = "RECOMMENDED"
	PriorityOptional    SupplementPriority = "OPTIONAL"
)

// SupplementItem is one supplement recommendation within the plan.
type SupplementItem struct {
	ID                uuid.UUID           `json:"id"`
	Name              string              `json:"name"`
	DosageAmount      float64             `json:"dosageAmount"`
	DosageUnit        string              `json:"dosageUnit"`
	Timing            SupplementTiming    `json:"timing"`
	Frequency         SupplementFrequency `json:"frequency"`
	Priority          SupplementPriority  `json:"priority"`
	Reasoning         string              `json:"reasoning"`
	Evidence          string              `json:"evidence"`
	Benefits          []string            `json:"benefits"`
	SideEffects       []string            `json:"sideEffects"`
	Interactions      []string            `json:"interactions"`
	Contraindications []string            `json:"contraindications"`
	MonthlyCostUSD    float64             `json:"monthlyCostUsd,omitempty"`
	QualityNotes      string              `json:"qualityNotes,omitempty"`
}

// SupplementPlan is the ordered supplement protocol plus plan-level notes.
type SupplementPlan struct {
	ID               uuid.UUID        `json:"id"`
	Supplements      []SupplementItem `json:"supplements"`
	Guidelines       []string         `json:"guidelines"`
	Warnings         []string         `json:"warnings"`
	InteractionNotes []string         `json:"interactionNotes"`
}

// Exercise is one movement within a workout day.
type Exercise struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Sets         int       `json:"sets"`
	Reps         string    `json:"reps"`
	RestSeconds  int       `json:"restSeconds"`
	RPE          float64   `json:"rpe,omitempty"`
	Instructions string    `json:"instructions"`
	Alternatives []string  `json:"alternatives"`
}

// WorkoutDay is one training day with its muscle-group focus and exercises.
type WorkoutDay struct {
	ID        uuid.UUID  `json:"id"`
	DayNumber int        `json:"dayNumber"`
	Focus     []string   `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutGuidelines holds plan-level training guidance.
type WorkoutGuidelines struct {
	Warmup      string   `json:"warmup"`
	Cooldown    string   `json:"cooldown"`
	RestDays    string   `json:"restDays"`
	Progression string   `json:"progression"`
	Equipment   []string `json:"equipment"`
}

// WorkoutPlan is the ordered weekly training schedule.
type WorkoutPlan struct {
	ID         uuid.UUID         `json:"id"`
	Days       []WorkoutDay      `json:"days"`
	Guidelines WorkoutGuidelines `json:"guidelines"`
}

// MacroTargets are the daily nutrition targets.
type MacroTargets struct {
	CaloriesKcal float64 `json:"caloriesKcal"`
	ProteinG     float64 `json:"proteinG"`
	CarbsG       float64 `json:"carbsG"`
	FatG         float64 `json:"fatG"`
}

// MealNutrition summarizes one meal's macros.
type MealNutrition struct {
	CaloriesKcal float64 `json:"caloriesKcal"`
	ProteinG     float64 `json:"proteinG"`
	CarbsG       float64 `json:"carbsG"`
	FatG         float64 `json:"fatG"`
}

// Meal is one meal within a sample day.
type Meal struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Ingredients  []string      `json:"ingredients"`
	Instructions string        `json:"instructions"`
	Nutrition    MealNutrition `json:"nutrition"`
}

// MealTemplate is a recurring slot in the daily meal schedule.
type MealTemplate struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	TimeHint string    `json:"timeHint"`
	Purpose  string    `json:"purpose"`
}

// MealDay is one day of the sample meal plan.
type MealDay struct {
	ID        uuid.UUID `json:"id"`
	DayNumber int       `json:"dayNumber"`
	Meals     []Meal    `json:"meals"`
}

// DietPlan is macro targets, the meal schedule, and a 7-day sample plan.
type DietPlan struct {
	ID             uuid.UUID      `json:"id"`
	MacroTargets   MacroTargets   `json:"macroTargets"`
	MealSchedule   []MealTemplate `json:"mealSchedule"`
	SampleMealPlan []MealDay      `json:"sampleMealPlan"`
	Guidelines     []string       `json:"guidelines"`
}

// RecommendationResult is the typed tree decoded from the vendor response.
// Field names mirror the JSON schema the system prompt dictates to the model.
type RecommendationResult struct {
	ID                       uuid.UUID       `json:"id"`
	HealthSummary            string          `json:"healthSummary"`
	KeyInsights              []string        `json:"keyInsights"`
	PriorityActions          []string        `json:"priorityActions"`
	SupplementPlan           *SupplementPlan `json:"supplementPlan,omitempty"`
	WorkoutPlan              *WorkoutPlan    `json:"workoutPlan,omitempty"`
	DietPlan                 *DietPlan       `json:"dietPlan,omitempty"`
	LifestyleRecommendations []string        `json:"lifestyleRecommendations"`
	Disclaimers              []string        `json:"disclaimers"`
	SuggestedReviewWeeks     int             `json:"suggestedReviewWeeks"`
	GeneratedAt              time.Time       `json:"generatedAt"`
}

func (r *RecommendationResult) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *RecommendationResult) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for RecommendationResult")
	}
	return json.Unmarshal(data, r)
}

func (RecommendationResult) GormDataType() string {
	return "jsonb"
}

// Recommendation is the persisted record of one generation attempt.
type Recommendation struct {
	ID        uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfileID uuid.UUID             `gorm:"type:uuid;not null;index:idx_recommendations_profile_created" json:"profile_id"`
	Vendor    string                `gorm:"type:varchar(20);not null" json:"vendor"`
	Model     string                `gorm:"type:varchar(80);not null" json:"model"`
	Status    RecommendationStatus  `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
	ErrorKind string                `gorm:"type:varchar(30)" json:"error_kind,omitempty"`
	Result    *RecommendationResult `gorm:"type:jsonb" json:"result,omitempty"`
	CreatedAt time.Time             `gorm:"autoCreateTime;index:idx_recommendations_profile_created,sort:desc" json:"created_at"`
	UpdatedAt time.Time             `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// GenerateRecommendationRequest is the request body for starting a generation.
// @Description Vendor and model selection for one generation attempt.
type GenerateRecommendationRequest struct {
	// Vendor identifier: openai, anthropic or gemini
	Vendor string `json:"vendor" validate:"required,oneof=openai anthropic gemini" example:"anthropic"`
	// Vendor model name; empty selects the configured default
	Model string `json:"model" validate:"omitempty,max=80" example:"claude-sonnet-4-20250514"`
}

// GenerateRecommendationResponse wraps the stored record with the trace ID
// used for feedback linking (present only when tracing is enabled).
type GenerateRecommendationResponse struct {
	Recommendation
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// RecommendationListResponse is a page of recommendation records.
// @Description Paginated recommendation history for a profile.
type RecommendationListResponse struct {
	Data       []Recommendation   `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// RecommendationFilter contains filter parameters for listing recommendations.
type RecommendationFilter struct {
	Status RecommendationStatus
	Limit  int
	Cursor string
}
