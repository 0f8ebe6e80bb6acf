package fitness

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

// Plausibility bounds. Values outside them are almost always unit mistakes
// (inches for centimetres, pounds for kilograms, metres for centimetres).
// Together they cap BMI at MaxWeightKg / (MinHeightCm/100)² = 2600.
const (
	MinHeightCm = 50.0
	MaxHeightCm = 300.0
	MinWeightKg = 2.0
	MaxWeightKg = 650.0
	MinAgeYears = 1.0
	MaxAgeYears = 130.0
)

// RawInput is the loosely typed snapshot a caller (form, batch job, HTTP
// request) hands to the engine. Enum fields are free-form strings.
type RawInput struct {
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	AgeYears       float64  `json:"age_years"`
	Gender         string   `json:"gender"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty"`

	ActivityLevel      string  `json:"activity_level"`
	GymSessionsPerWeek int     `json:"gym_sessions_per_week"`
	TimeInGymHours     float64 `json:"time_in_gym_hours"`
	SleepHours         float64 `json:"sleep_hours"`
	DietPreference     string  `json:"diet_preference"`
	FitnessGoal        string  `json:"fitness_goal"`

	Sport          string `json:"sport"`
	EmotionalState string `json:"emotional_state"`
}

// Normalize validates raw values and resolves enum strings. Unknown sport,
// diet, activity, goal and emotional state fall back to their defaults;
// an unknown gender is rejected.
func Normalize(raw RawInput) (Profile, error) {
	anthro := AnthropometricInput{
		HeightCm: raw.HeightCm,
		WeightKg: raw.WeightKg,
		AgeYears: raw.AgeYears,
	}
	if raw.BodyFatPercent != nil {
		bf := *raw.BodyFatPercent
		anthro.BodyFatPercent = &bf
	}

	gender, err := ParseGender(raw.Gender)
	if err != nil {
		return Profile{}, err
	}
	anthro.Gender = gender
	if err := ValidateAnthropometric(anthro); err != nil {
		return Profile{}, err
	}

	lifestyle := LifestyleInput{
		ActivityLevel:      ParseActivityLevel(raw.ActivityLevel),
		GymSessionsPerWeek: raw.GymSessionsPerWeek,
		TimeInGymHours:     raw.TimeInGymHours,
		SleepHours:         raw.SleepHours,
		DietPreference:     ParseDietPreference(raw.DietPreference),
		FitnessGoal:        ParseFitnessGoal(raw.FitnessGoal),
	}
	if err := ValidateLifestyle(lifestyle); err != nil {
		return Profile{}, err
	}

	return Profile{
		Anthropometric: anthro,
		Lifestyle:      lifestyle,
		Sport:          ParseSport(raw.Sport),
		EmotionalState: ParseEmotionalState(raw.EmotionalState),
	}, nil
}

// ValidateAnthropometric rejects non-positive, non-finite or implausible
// measurements before any formula runs.
func ValidateAnthropometric(a AnthropometricInput) error {
	if err := positive("height_cm", a.HeightCm, MinHeightCm, MaxHeightCm); err != nil {
		return err
	}
	if err := positive("weight_kg", a.WeightKg, MinWeightKg, MaxWeightKg); err != nil {
		return err
	}
	if err := positive("age_years", a.AgeYears, MinAgeYears, MaxAgeYears); err != nil {
		return err
	}
	switch a.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return invalid("gender", "unknown value %q", a.Gender)
	}
	if a.BodyFatPercent != nil {
		bf := *a.BodyFatPercent
		if math.IsNaN(bf) || bf < 0 || bf > 100 {
			return invalid("body_fat_percent", "must be between 0 and 100, got %v", bf)
		}
	}
	return nil
}

func ValidateLifestyle(l LifestyleInput) error {
	if l.GymSessionsPerWeek < 0 {
		return invalid("gym_sessions_per_week", "must not be negative, got %d", l.GymSessionsPerWeek)
	}
	if err := nonNegative("time_in_gym_hours", l.TimeInGymHours); err != nil {
		return err
	}
	return nonNegative("sleep_hours", l.SleepHours)
}

func positive(field string, v, floor, ceiling float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v <= 0 {
		return invalid(field, "must be positive, got %v", v)
	}
	if v < floor {
		return invalid(field, "must be at least %v, got %v", floor, v)
	}
	if v > ceiling {
		return invalid(field, "must not exceed %v, got %v", ceiling, v)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative, got %v", v)
	}
	return nil
}

func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func ParseGender(s string) (Gender, error) {
	switch g := Gender(canonical(s)); g {
	case GenderMale, GenderFemale, GenderOther:
		return g, nil
	case "m":
		return GenderMale, nil
	case "f":
		return GenderFemale, nil
	default:
		return "", invalid("gender", "unknown value %q", s)
	}
}

// ParseActivityLevel resolves s, falling back to moderate.
func ParseActivityLevel(s string) ActivityLevel {
	a := ActivityLevel(canonical(s))
	if _, ok := activityMultipliers[a]; ok {
		return a
	}
	logFallback("activity_level", s, string(ActivityModerate))
	return ActivityModerate
}

// ParseDietPreference resolves s, falling back to balanced.
func ParseDietPreference(s string) DietPreference {
	switch d := DietPreference(canonical(s)); d {
	case DietBalanced, DietVegetarian, DietVegan, DietKeto, DietPaleo,
		DietMediterranean, DietLowCarb, DietHighProtein:
		return d
	}
	logFallback("diet_preference", s, string(DietBalanced))
	return DietBalanced
}

func ParseFitnessGoal(s string) FitnessGoal {
	switch g := FitnessGoal(canonical(s)); g {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalOther:
		return g
	}
	logFallback("fitness_goal", s, string(GoalOther))
	return GoalOther
}

func ParseEmotionalState(s string) EmotionalState {
	e := EmotionalState(canonical(s))
	if e == EmotionNeutral {
		return e
	}
	if _, ok := emotionalBullets[e]; ok {
		return e
	}
	logFallback("emotional_state", s, string(EmotionNeutral))
	return EmotionNeutral
}

// ParseSport resolves s against the sport table, falling back to general.
func ParseSport(s string) Sport {
	sp := Sport(canonical(s))
	if _, ok := sportTable[sp]; ok {
		return sp
	}
	logFallback("sport", s, string(SportGeneral))
	return SportGeneral
}

func logFallback(field, got, fallback string) {
	if got == "" {
		return
	}
	log.Debug().Str("field", field).Str("value", got).Str("fallback", fallback).Msg("Unrecognized value, using default")
}
