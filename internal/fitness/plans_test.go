package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealPlanTemplate(t *testing.T) {
	for _, d := range []DietPreference{DietBalanced, DietVegetarian, DietVegan, DietKeto, DietPaleo, DietMediterranean} {
		p := MealPlanTemplate(d)
		assert.Equal(t, mealPlans[d], p)
		assert.NotEmpty(t, p.Breakfast)
		assert.NotEmpty(t, p.Lunch)
		assert.NotEmpty(t, p.Dinner)
		assert.NotEmpty(t, p.Snacks)
	}

	balanced := MealPlanTemplate(DietBalanced)
	assert.Equal(t, balanced, MealPlanTemplate(DietLowCarb))
	assert.Equal(t, balanced, MealPlanTemplate(DietHighProtein))
	assert.Equal(t, balanced, MealPlanTemplate(DietPreference("carnivore")))
}

func TestWorkoutPlanTiers(t *testing.T) {
	tests := []struct {
		sessions  int
		frequency string
		days      int
	}{
		{0, "2 days per week", 2},
		{2, "2 days per week", 2},
		{3, "4 days per week", 4},
		{4, "4 days per week", 4},
		{5, "5 days per week", 5},
		{7, "5 days per week", 5},
	}
	for _, tt := range tests {
		p := WorkoutPlanTemplate(tt.sessions, GoalMaintenance, 22)
		assert.Equal(t, tt.frequency, p.Frequency, "sessions=%d", tt.sessions)
		assert.Len(t, p.Sessions, tt.days, "sessions=%d", tt.sessions)
		for _, s := range p.Sessions {
			assert.NotEmpty(t, s.Exercises)
		}
	}
}

func TestWorkoutPlanCardio(t *testing.T) {
	// Beginner tier is gated by BMI 25.
	assert.Equal(t, beginnerCardio[cardioWeightLoss][0], WorkoutPlanTemplate(1, GoalWeightLoss, 24.9).Cardio)
	assert.Equal(t, beginnerCardio[cardioWeightLoss][1], WorkoutPlanTemplate(1, GoalWeightLoss, 25).Cardio)
	assert.Equal(t, beginnerCardio[cardioMuscleGain][0], WorkoutPlanTemplate(2, GoalMuscleGain, 20).Cardio)
	assert.Equal(t, beginnerCardio[cardioOther][1], WorkoutPlanTemplate(0, GoalMaintenance, 31).Cardio)

	// Higher tiers ignore BMI.
	assert.Equal(t, WorkoutPlanTemplate(3, GoalWeightLoss, 20).Cardio, WorkoutPlanTemplate(3, GoalWeightLoss, 35).Cardio)
	assert.Equal(t, intermediateCardio[cardioMuscleGain], WorkoutPlanTemplate(4, GoalMuscleGain, 28).Cardio)
	assert.Equal(t, advancedCardio[cardioOther], WorkoutPlanTemplate(6, GoalOther, 28).Cardio)
	assert.Equal(t, advancedCardio[cardioWeightLoss], WorkoutPlanTemplate(5, GoalWeightLoss, 18).Cardio)
}
