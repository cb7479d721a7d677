package ai

import (
	"fmt"
	"strings"

	"github.com/wellplan/advisor-api/internal/domain"
)

// defaultSystemPrompt is the provider-independent instruction, including the
// literal target JSON schema. The schema text and the structural decoder in
// decode.go must stay in sync; TestDecodeRecommendation_SchemaConformance
// guards against drift.
const defaultSystemPrompt = `You are a certified nutritionist, personal trainer, and wellness advisor.

You receive a single user's health profile: demographics, medical history, fitness attributes, dietary preferences, lifestyle factors, and goals. Based only on this profile, produce a personalized supplement plan, workout plan, and diet plan.

Rules:
- Recommendations must respect every listed condition, medication, allergy, and intolerance.
- Do NOT diagnose conditions or replace medical care; always include a disclaimer advising the user to consult a healthcare professional.
- Be specific: exact dosages, sets, reps, rest periods, and ingredient lists.
- Adjust volume and intensity to the stated fitness level and available training time.
- Calorie and macro targets must be consistent with the stated TDEE and goals.

You must respond as strict JSON with exactly this shape:

{
  "healthSummary": "2-4 sentences summarizing the user's current health status and how the plans address their goals.",
  "keyInsights": ["3-6 observations about this profile"],
  "priorityActions": ["3-5 most impactful actions, ordered by importance"],
  "supplementPlan": {
    "supplements": [
      {
        "name": "string",
        "dosageAmount": number,
        "dosageUnit": "mg | g | mcg | IU | ml",
        "timing": "MORNING | WITH_MEAL | EMPTY_STOMACH | BEFORE_WORKOUT | AFTER_WORKOUT | EVENING | BEFORE_BED",
        "frequency": "DAILY | TWICE_DAILY | EVERY_OTHER_DAY | WEEKLY | AS_NEEDED",
        "priority": "ESSENTIAL | RECOMMENDED | OPTIONAL",
        "reasoning": "why this supplement for this user",
        "evidence": "brief note on the supporting evidence",
        "benefits": ["string"],
        "sideEffects": ["string"],
        "interactions": ["string"],
        "contraindications": ["string"],
        "monthlyCostUsd": number,
        "qualityNotes": "what to look for when buying"
      }
    ],
    "guidelines": ["string"],
    "warnings": ["string"],
    "interactionNotes": ["string"]
  },
  "workoutPlan": {
    "days": [
      {
        "dayNumber": number,
        "focus": ["muscle groups or modality for this day"],
        "exercises": [
          {
            "name": "string",
            "sets": number,
            "reps": "rep range, e.g. 8-12",
            "restSeconds": number,
            "rpe": number,
            "instructions": "form cues",
            "alternatives": ["string"]
          }
        ]
      }
    ],
    "guidelines": {
      "warmup": "string",
      "cooldown": "string",
      "restDays": "string",
      "progression": "string",
      "equipment": ["string"]
    }
  },
  "dietPlan": {
    "macroTargets": {"caloriesKcal": number, "proteinG": number, "carbsG": number, "fatG": number},
    "mealSchedule": [
      {"name": "string", "timeHint": "e.g. 07:30", "purpose": "string"}
    ],
    "sampleMealPlan": [
      {
        "dayNumber": number,
        "meals": [
          {
            "name": "string",
            "ingredients": ["string"],
            "instructions": "string",
            "nutrition": {"caloriesKcal": number, "proteinG": number, "carbsG": number, "fatG": number}
          }
        ]
      }
    ],
    "guidelines": ["string"]
  },
  "lifestyleRecommendations": ["string"],
  "disclaimers": ["string"],
  "suggestedReviewWeeks": number
}

The sampleMealPlan must contain exactly 7 days. No extra fields. No comments. No backticks.`

// PromptBuilder turns a profile into the system and user prompts for one
// generation attempt. The system prompt may be overridden (e.g. with a
// Langfuse-managed prompt) at construction time.
type PromptBuilder struct {
	systemPrompt string
}

// NewPromptBuilder returns a builder using the compiled-in system prompt
// when systemOverride is empty.
func NewPromptBuilder(systemOverride string) *PromptBuilder {
	sp := strings.TrimSpace(systemOverride)
	if sp == "" {
		sp = defaultSystemPrompt
	}
	return &PromptBuilder{systemPrompt: sp}
}

// SystemPrompt returns the provider-independent instruction text.
func (b *PromptBuilder) SystemPrompt() string {
	return b.systemPrompt
}

// UserPrompt renders every profile field into a labeled section. Empty
// collections and unset optionals render as an explicit "None specified"
// marker rather than being omitted, so the model is not left to guess.
func (b *PromptBuilder) UserPrompt(p *domain.Profile) string {
	var sb strings.Builder

	sb.WriteString("USER HEALTH PROFILE\n")

	sb.WriteString("\n## Demographics\n")
	writeLine(&sb, "Age", fmt.Sprintf("%d years", p.Age))
	writeLine(&sb, "Sex", string(p.Sex))
	writeLine(&sb, "Height", fmt.Sprintf("%.1f cm (%s)", p.HeightCm, p.HeightImperial()))
	writeLine(&sb, "Weight", fmt.Sprintf("%.1f kg (%.1f lb)", p.WeightKg, p.WeightLb()))
	writeLine(&sb, "BMI", fmt.Sprintf("%.1f", p.BMI()))
	writeLine(&sb, "Estimated BMR", fmt.Sprintf("%.0f kcal/day", p.BMR()))
	writeLine(&sb, "Estimated TDEE", fmt.Sprintf("%.0f kcal/day", p.TDEE()))

	sb.WriteString("\n## Medical History\n")
	writeList(&sb, "Conditions", p.Conditions)
	writeList(&sb, "Medications", p.Medications)
	writeList(&sb, "Allergies", p.Allergies)

	sb.WriteString("\n## Fitness\n")
	writeLine(&sb, "Fitness level", string(p.FitnessLevel))
	writeLine(&sb, "Training days per week", fmt.Sprintf("%d", p.ActivityDays))
	writeLine(&sb, "Minutes per session", fmt.Sprintf("%d", p.MinutesPerSession))

	sb.WriteString("\n## Diet\n")
	writeLine(&sb, "Diet type", string(p.DietType))
	writeList(&sb, "Intolerances", p.Intolerances)
	writeLine(&sb, "Meals per day", fmt.Sprintf("%d", p.MealsPerDay))

	sb.WriteString("\n## Lifestyle\n")
	writeLine(&sb, "Sleep", fmt.Sprintf("%.1f hours/night", p.SleepHours))
	writeLine(&sb, "Stress level", fmt.Sprintf("%d/10", p.StressLevel))
	writeLine(&sb, "Water intake", fmt.Sprintf("%.1f liters/day", p.WaterLiters))
	writeLine(&sb, "Alcoholic drinks per week", fmt.Sprintf("%d", p.AlcoholPerWeek))
	writeLine(&sb, "Caffeinated drinks per day", fmt.Sprintf("%d", p.CaffeinePerDay))
	writeLine(&sb, "Smoker", yesNo(p.Smoker))

	sb.WriteString("\n## Goals\n")
	writeList(&sb, "Goals", p.Goals)
	writeLine(&sb, "Timeline", fmt.Sprintf("%d weeks", p.TimelineWeeks))

	sb.WriteString("\nGenerate the recommendation in the required JSON format.")

	return sb.String()
}

func writeLine(sb *strings.Builder, label, value string) {
	sb.WriteString("- ")
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func writeList(sb *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		writeLine(sb, label, "None specified")
		return
	}
	writeLine(sb, label, strings.Join(values, ", "))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
