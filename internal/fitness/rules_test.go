package fitness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusAreas(t *testing.T) {
	for _, c := range []SimpleBMICategory{SimpleUnderweight, SimpleNormal, SimpleOverweight, SimpleObese} {
		t.Run(string(c), func(t *testing.T) {
			rested := FocusAreas(c, 8)
			require.Len(t, rested, 3)

			tired := FocusAreas(c, 6.5)
			require.Len(t, tired, 4)
			assert.Equal(t, rested, tired[:3])
			assert.Equal(t, sleepBullet, tired[3])
		})
	}
	assert.Len(t, FocusAreas(SimpleNormal, 7), 3)
}

func TestSportBullet(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Sports() {
		b := SportBullet(p.Sport)
		assert.NotEmpty(t, b)
		assert.False(t, seen[b], "duplicate bullet for %s", p.Sport)
		seen[b] = true
	}
	assert.Equal(t, genericSportBullet, SportBullet(SportGeneral))
	assert.Equal(t, genericSportBullet, SportBullet(Sport("curling")))
}

func TestEmotionalBullet(t *testing.T) {
	_, ok := EmotionalBullet(EmotionNeutral)
	assert.False(t, ok)

	states := []EmotionalState{EmotionStressed, EmotionAnxious, EmotionDepressed, EmotionFatigued, EmotionMotivated, EmotionConfident}
	for _, e := range states {
		b, ok := EmotionalBullet(e)
		assert.True(t, ok, "state=%s", e)
		assert.NotEmpty(t, b)
	}
}

func TestCombineBulletsOrder(t *testing.T) {
	got := CombineBullets(SimpleOverweight, 5, SportRunning, EmotionStressed)
	require.Len(t, got, 6)
	assert.Equal(t, focusAreaBullets[SimpleOverweight][0], got[0])
	assert.Equal(t, sleepBullet, got[3])
	assert.Equal(t, sportBullets[SportRunning], got[4])
	assert.Equal(t, emotionalBullets[EmotionStressed], got[5])

	neutral := CombineBullets(SimpleNormal, 8, SportGeneral, EmotionNeutral)
	require.Len(t, neutral, 4)
	assert.Equal(t, genericSportBullet, neutral[3])
}

func TestGenerateRecommendationsDeterministic(t *testing.T) {
	m := HealthMetrics{BMI: 27.3}
	l := LifestyleInput{
		GymSessionsPerWeek: 1,
		SleepHours:         6,
		DietPreference:     DietVegan,
		FitnessGoal:        GoalWeightLoss,
	}

	first := GenerateRecommendations(m, l, SportCycling, EmotionFatigued)
	second := GenerateRecommendations(m, l, SportCycling, EmotionFatigued)
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, mealPlans[DietVegan], first.MealPlan)
	assert.Equal(t, "2 days per week", first.WorkoutPlan.Frequency)
	assert.Equal(t, beginnerCardio[cardioWeightLoss][1], first.WorkoutPlan.Cardio)
}

func TestGenerateRecommendationsDoesNotShareTables(t *testing.T) {
	rec := GenerateRecommendations(HealthMetrics{BMI: 22}, LifestyleInput{GymSessionsPerWeek: 5}, SportGeneral, EmotionNeutral)
	rec.WorkoutPlan.Sessions[0].Exercises[0] = "mutated"
	rec.FocusAreas[0] = "mutated"

	fresh := GenerateRecommendations(HealthMetrics{BMI: 22}, LifestyleInput{GymSessionsPerWeek: 5}, SportGeneral, EmotionNeutral)
	assert.NotEqual(t, "mutated", fresh.WorkoutPlan.Sessions[0].Exercises[0])
	assert.NotEqual(t, "mutated", fresh.FocusAreas[0])
}
