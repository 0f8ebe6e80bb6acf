/*
Package fitness derives health metrics, BMI classifications and template
recommendations from anthropometric and lifestyle inputs.

Every exported function is pure: inputs are taken by value and a freshly
built result is returned, so callers may invoke the package concurrently.
*/
package fitness

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type DietPreference string

const (
	DietBalanced      DietPreference = "balanced"
	DietVegetarian    DietPreference = "vegetarian"
	DietVegan         DietPreference = "vegan"
	DietKeto          DietPreference = "keto"
	DietPaleo         DietPreference = "paleo"
	DietMediterranean DietPreference = "mediterranean"
	DietLowCarb       DietPreference = "low_carb"
	DietHighProtein   DietPreference = "high_protein"
)

type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight_loss"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalMaintenance FitnessGoal = "maintenance"
	GoalOther       FitnessGoal = "other"
)

type EmotionalState string

const (
	EmotionNeutral   EmotionalState = "neutral"
	EmotionStressed  EmotionalState = "stressed"
	EmotionAnxious   EmotionalState = "anxious"
	EmotionDepressed EmotionalState = "depressed"
	EmotionFatigued  EmotionalState = "fatigued"
	EmotionMotivated EmotionalState = "motivated"
	EmotionConfident EmotionalState = "confident"
)

// AnthropometricInput holds body measurements. BodyFatPercent is optional;
// when set it overrides the formula estimate.
type AnthropometricInput struct {
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	AgeYears       float64  `json:"age_years"`
	Gender         Gender   `json:"gender"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty"`
}

type LifestyleInput struct {
	ActivityLevel      ActivityLevel  `json:"activity_level"`
	GymSessionsPerWeek int            `json:"gym_sessions_per_week"`
	TimeInGymHours     float64        `json:"time_in_gym_hours"`
	SleepHours         float64        `json:"sleep_hours"`
	DietPreference     DietPreference `json:"diet_preference"`
	FitnessGoal        FitnessGoal    `json:"fitness_goal"`
}

// WeightRange is an inclusive [Min, Max] weight interval in kilograms.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Calories returns the energy content of the macro split in kcal.
func (m Macros) Calories() int {
	return m.ProteinG*4 + m.CarbsG*4 + m.FatG*9
}

type HealthMetrics struct {
	BMI              float64     `json:"bmi"`
	BodyFatEstimate  float64     `json:"body_fat_estimate"`
	BodyFatMeasured  bool        `json:"body_fat_measured"`
	BMR              int         `json:"bmr"`
	TDEE             int         `json:"tdee"`
	AdjustedTDEE     int         `json:"adjusted_tdee"`
	IdealWeightRange WeightRange `json:"ideal_weight_range"`
	Macros           Macros      `json:"macros"`
	WaterIntakeMl    int         `json:"water_intake_ml"`
	VO2MaxEstimate   int         `json:"vo2max_estimate"`
}

type MealPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

type WorkoutSession struct {
	Day       string   `json:"day"`
	Focus     string   `json:"focus"`
	Exercises []string `json:"exercises"`
}

type WorkoutPlan struct {
	Frequency string           `json:"frequency"`
	Sessions  []WorkoutSession `json:"sessions"`
	Cardio    string           `json:"cardio"`
}

type RecommendationSet struct {
	FocusAreas  []string    `json:"focus_areas"`
	MealPlan    MealPlan    `json:"meal_plan"`
	WorkoutPlan WorkoutPlan `json:"workout_plan"`
}

// Classification groups the three independent BMI scales. They are not
// interchangeable: Detailed and Simple are generic, Sport uses the sport table.
type Classification struct {
	Detailed DetailedBMICategory `json:"detailed"`
	Simple   SimpleBMICategory   `json:"simple"`
	Sport    SportBMICategory    `json:"sport"`
}

// Profile is a validated, canonical input snapshot.
type Profile struct {
	Anthropometric AnthropometricInput `json:"anthropometric"`
	Lifestyle      LifestyleInput      `json:"lifestyle"`
	Sport          Sport               `json:"sport"`
	EmotionalState EmotionalState      `json:"emotional_state"`
}

// Assessment is the full pipeline result for one Profile.
type Assessment struct {
	Profile         Profile           `json:"profile"`
	Metrics         HealthMetrics     `json:"metrics"`
	Classification  Classification    `json:"classification"`
	Recommendations RecommendationSet `json:"recommendations"`
}
