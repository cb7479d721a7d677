package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Sex is the biological sex used for BMR calculation.
// @Description Biological sex: MALE or FEMALE.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// FitnessLevel describes training experience.
// @Description Self-reported fitness level.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "BEGINNER"
	FitnessIntermediate FitnessLevel = "INTERMEDIATE"
	FitnessAdvanced     FitnessLevel = "ADVANCED"
)

// DietType describes the dietary pattern the user follows.
type DietType string

const (
	DietOmnivore      DietType = "OMNIVORE"
	DietVegetarian    DietType = "VEGETARIAN"
	DietVegan         DietType = "VEGAN"
	DietPescatarian   DietType = "PESCATARIAN"
	DietKeto          DietType = "KETO"
	DietMediterranean DietType = "MEDITERRANEAN"
)

// StringSlice stores a list of strings as a JSONB column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringSlice")
	}
	return json.Unmarshal(data, (*[]string)(s))
}

func (StringSlice) GormDataType() string {
	return "jsonb"
}

// Profile holds the health data a recommendation is generated from.
// It is treated as immutable for the duration of one generation request.
type Profile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// Demographics / biometrics
	Age      int     `gorm:"type:smallint;not null" json:"age"`
	Sex      Sex     `gorm:"type:varchar(10);not null" json:"sex"`
	HeightCm float64 `gorm:"not null" json:"height_cm"`
	WeightKg float64 `gorm:"not null" json:"weight_kg"`

	// Medical history
	Conditions  StringSlice `gorm:"type:jsonb" json:"conditions"`
	Medications StringSlice `gorm:"type:jsonb" json:"medications"`
	Allergies   StringSlice `gorm:"type:jsonb" json:"allergies"`

	// Fitness
	FitnessLevel      FitnessLevel `gorm:"type:varchar(20);not null;default:'BEGINNER'" json:"fitness_level"`
	ActivityDays      int          `gorm:"type:smallint;not null;default:3" json:"activity_days"`
	MinutesPerSession int          `gorm:"type:smallint;not null;default:45" json:"minutes_per_session"`

	// Diet
	DietType     DietType    `gorm:"type:varchar(20);not null;default:'OMNIVORE'" json:"diet_type"`
	Intolerances StringSlice `gorm:"type:jsonb" json:"intolerances"`
	MealsPerDay  int         `gorm:"type:smallint;not null;default:3" json:"meals_per_day"`

	// Lifestyle
	SleepHours     float64 `gorm:"not null;default:7" json:"sleep_hours"`
	StressLevel    int     `gorm:"type:smallint;not null;default:5" json:"stress_level"`
	WaterLiters    float64 `gorm:"not null;default:2" json:"water_liters"`
	AlcoholPerWeek int     `gorm:"type:smallint;not null;default:0" json:"alcohol_per_week"`
	CaffeinePerDay int     `gorm:"type:smallint;not null;default:0" json:"caffeine_per_day"`
	Smoker         bool    `gorm:"not null;default:false" json:"smoker"`

	// Goals
	Goals         StringSlice `gorm:"type:jsonb" json:"goals"`
	TimelineWeeks int         `gorm:"type:smallint;not null;default:12" json:"timeline_weeks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// BMI returns the body mass index (kg/m^2), rounded to one decimal.
func (p *Profile) BMI() float64 {
	if p.HeightCm <= 0 {
		return 0
	}
	m := p.HeightCm / 100
	return math.Round(p.WeightKg/(m*m)*10) / 10
}

// BMR returns basal metabolic rate in kcal/day using Mifflin-St Jeor.
func (p *Profile) BMR() float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == SexFemale {
		return math.Round(base - 161)
	}
	return math.Round(base + 5)
}

// TDEE returns total daily energy expenditure, scaling BMR by an activity
// multiplier derived from weekly training days.
func (p *Profile) TDEE() float64 {
	multiplier := 1.2
	switch {
	case p.ActivityDays >= 6:
		multiplier = 1.725
	case p.ActivityDays >= 4:
		multiplier = 1.55
	case p.ActivityDays >= 2:
		multiplier = 1.375
	}
	return math.Round(p.BMR() * multiplier)
}

// HeightImperial renders height as feet and inches, e.g. "5'11\"".
// Rounding happens once on the inch total so a value that rounds up across
// a foot boundary carries into the feet.
func (p *Profile) HeightImperial() string {
	totalInches := int(math.Round(p.HeightCm / 2.54))
	return fmt.Sprintf("%d'%d\"", totalInches/12, totalInches%12)
}

// WeightLb returns weight in pounds, rounded to one decimal.
func (p *Profile) WeightLb() float64 {
	return math.Round(p.WeightKg*2.20462*10) / 10
}

// CreateProfileRequest is the request body for creating a profile.
// @Description Request payload holding the full health questionnaire.
type CreateProfileRequest struct {
	Age      int     `json:"age" validate:"required,min=13,max=120" example:"34"`
	Sex      Sex     `json:"sex" validate:"required,oneof=MALE FEMALE" example:"MALE" enums:"MALE,FEMALE"`
	HeightCm float64 `json:"height_cm" validate:"required,min=90,max=250" example:"180"`
	WeightKg float64 `json:"weight_kg" validate:"required,min=30,max=350" example:"82.5"`

	Conditions  []string `json:"conditions" validate:"omitempty,dive,max=120"`
	Medications []string `json:"medications" validate:"omitempty,dive,max=120"`
	Allergies   []string `json:"allergies" validate:"omitempty,dive,max=120"`

	FitnessLevel      FitnessLevel `json:"fitness_level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED" example:"INTERMEDIATE"`
	ActivityDays      int          `json:"activity_days" validate:"min=0,max=7" example:"4"`
	MinutesPerSession int          `json:"minutes_per_session" validate:"min=0,max=300" example:"60"`

	DietType     DietType `json:"diet_type" validate:"required,oneof=OMNIVORE VEGETARIAN VEGAN PESCATARIAN KETO MEDITERRANEAN" example:"OMNIVORE"`
	Intolerances []string `json:"intolerances" validate:"omitempty,dive,max=120"`
	MealsPerDay  int      `json:"meals_per_day" validate:"min=1,max=8" example:"3"`

	SleepHours     float64 `json:"sleep_hours" validate:"min=0,max=16" example:"7.5"`
	StressLevel    int     `json:"stress_level" validate:"min=1,max=10" example:"6"`
	WaterLiters    float64 `json:"water_liters" validate:"min=0,max=10" example:"2.5"`
	AlcoholPerWeek int     `json:"alcohol_per_week" validate:"min=0,max=100" example:"2"`
	CaffeinePerDay int     `json:"caffeine_per_day" validate:"min=0,max=20" example:"2"`
	Smoker         bool    `json:"smoker" example:"false"`

	Goals         []string `json:"goals" validate:"required,min=1,dive,max=120" example:"build muscle,improve sleep"`
	TimelineWeeks int      `json:"timeline_weeks" validate:"min=1,max=104" example:"12"`
}

// ToProfile builds a Profile entity from the request.
func (r *CreateProfileRequest) ToProfile() *Profile {
	return &Profile{
		Age:               r.Age,
		Sex:               r.Sex,
		HeightCm:          r.HeightCm,
		WeightKg:          r.WeightKg,
		Conditions:        r.Conditions,
		Medications:       r.Medications,
		Allergies:         r.Allergies,
		FitnessLevel:      r.FitnessLevel,
		ActivityDays:      r.ActivityDays,
		MinutesPerSession: r.MinutesPerSession,
		DietType:          r.DietType,
		Intolerances:      r.Intolerances,
		MealsPerDay:       r.MealsPerDay,
		SleepHours:        r.SleepHours,
		StressLevel:       r.StressLevel,
		WaterLiters:       r.WaterLiters,
		AlcoholPerWeek:    r.AlcoholPerWeek,
		CaffeinePerDay:    r.CaffeinePerDay,
		Smoker:            r.Smoker,
		Goals:             r.Goals,
		TimelineWeeks:     r.TimelineWeeks,
	}
}

// ProfileResponse is the response body for profile endpoints.
// @Description Stored profile plus derived metrics.
type ProfileResponse struct {
	Profile
	BMI            float64 `json:"bmi" example:"25.5"`
	BMRKcal        float64 `json:"bmr_kcal" example:"1765"`
	TDEEKcal       float64 `json:"tdee_kcal" example:"2736"`
	HeightImperial string  `json:"height_imperial" example:"5'11\""`
	WeightLb       float64 `json:"weight_lb" example:"181.9"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		Profile:        *p,
		BMI:            p.BMI(),
		BMRKcal:        p.BMR(),
		TDEEKcal:       p.TDEE(),
		HeightImperial: p.HeightImperial(),
		WeightLb:       p.WeightLb(),
	}
}
