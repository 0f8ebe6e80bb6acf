package fitness

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"average male", 70, 170, 24.2},
		{"tall light", 60, 190, 16.6},
		{"short heavy", 95, 160, 37.1},
		{"exact", 81, 180, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.weightKg, tt.heightCm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBMIMatchesFormula(t *testing.T) {
	for w := 30.0; w <= 200; w += 7.3 {
		for h := 120.0; h <= 220; h += 9.1 {
			got, err := BMI(w, h)
			require.NoError(t, err)
			want := math.Round(w/((h/100)*(h/100))*10) / 10
			assert.Equal(t, want, got, "w=%v h=%v", w, h)
		}
	}
}

func TestBMIScalesWithWeight(t *testing.T) {
	single, err := BMI(50, 175)
	require.NoError(t, err)
	double, err := BMI(100, 175)
	require.NoError(t, err)
	assert.InDelta(t, 2*single, double, 0.15)
}

func TestBMIRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		field    string
	}{
		{"zero height", 70, 0, "height_cm"},
		{"negative height", 70, -170, "height_cm"},
		{"zero weight", 0, 170, "weight_kg"},
		{"nan weight", math.NaN(), 170, "weight_kg"},
		{"infinite height", 70, math.Inf(1), "height_cm"},
		{"height underflows", 70, 1e-170, "height_cm"},
		{"height in metres", 70, 1.7, "height_cm"},
		{"weight under floor", 1.5, 170, "weight_kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BMI(tt.weightKg, tt.heightCm)
			var inv *InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tt.field, inv.Field)
		})
	}
}

func TestBMR(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 = 1643.75, +5 for male
	assert.Equal(t, 1649, BMR(GenderMale, 70, 175, 30))
	assert.Equal(t, 1483, BMR(GenderFemale, 70, 175, 30))
	assert.Equal(t, BMR(GenderFemale, 62, 165, 41), BMR(GenderOther, 62, 165, 41))

	// 10*2 + 6.25*50 - 5*130 - 161 = -478.5
	assert.Equal(t, MinBMR, BMR(GenderFemale, 2, 50, 130))
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  int
	}{
		{ActivitySedentary, 2014},
		{ActivityLight, 2307},
		{ActivityModerate, 2601},
		{ActivityActive, 2895},
		{ActivityVeryActive, 3188},
		{ActivityLevel("unknown"), 2601},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, TDEE(1678, tt.level))
		})
	}
}

func TestAdjustedTDEE(t *testing.T) {
	assert.Equal(t, 2101, AdjustedTDEE(2601, GoalWeightLoss))
	assert.Equal(t, 2901, AdjustedTDEE(2601, GoalMuscleGain))
	assert.Equal(t, 2601, AdjustedTDEE(2601, GoalMaintenance))
	assert.Equal(t, 2601, AdjustedTDEE(2601, GoalOther))
}

func TestBodyFatEstimate(t *testing.T) {
	// 1.2*24.2 + 0.23*30 - 10.8 - 5.4 = 19.74
	assert.Equal(t, 19.7, BodyFatEstimate(24.2, 30, GenderMale))
	// 1.2*22 + 0.23*26 - 5.4 = 26.98
	assert.Equal(t, 27.0, BodyFatEstimate(22, 26, GenderFemale))
	assert.Equal(t, BodyFatEstimate(22, 25, GenderFemale), BodyFatEstimate(22, 25, GenderOther))
}

func TestBodyFatEstimateFloor(t *testing.T) {
	assert.Equal(t, BodyFatFloor, BodyFatEstimate(12, 1, GenderMale))
	for bmi := 10.0; bmi < 60; bmi += 0.5 {
		for age := 1.0; age < 100; age += 3 {
			assert.GreaterOrEqual(t, BodyFatEstimate(bmi, age, GenderMale), BodyFatFloor)
		}
	}
}

func TestCalculateMacros(t *testing.T) {
	m := CalculateMacros(70, 2601, GoalMaintenance)
	assert.Equal(t, 112, m.ProteinG)
	assert.Equal(t, 87, m.FatG)
	assert.Equal(t, 343, m.CarbsG)

	m = CalculateMacros(80, 2000, GoalWeightLoss)
	assert.Equal(t, 144, m.ProteinG)
	assert.Equal(t, 56, m.FatG)

	m = CalculateMacros(80, 3000, GoalMuscleGain)
	assert.Equal(t, 176, m.ProteinG)
	assert.Equal(t, 100, m.FatG)
}

func TestCalculateMacrosCapsProtein(t *testing.T) {
	// 2.2 g/kg at 650 kg is 5720 kcal of protein alone
	m := CalculateMacros(650, 1200, GoalMuscleGain)
	assert.Equal(t, 40, m.FatG)
	assert.Equal(t, 210, m.ProteinG)
	assert.Equal(t, 0, m.CarbsG)

	m = CalculateMacros(70, -300, GoalWeightLoss)
	assert.Equal(t, Macros{}, m)
}

func TestMacrosSumToAdjustedTDEE(t *testing.T) {
	goals := []FitnessGoal{GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalOther}
	for _, goal := range goals {
		for w := 40.0; w <= 150; w += 3.7 {
			for kcal := 1200; kcal <= 4500; kcal += 137 {
				m := CalculateMacros(w, kcal, goal)
				assert.InDelta(t, kcal, m.Calories(), 8, "goal=%s w=%v kcal=%d", goal, w, kcal)
			}
		}
	}
}

func TestIdealWeightRange(t *testing.T) {
	r := IdealWeightRange(1.8, SportGeneral)
	assert.Equal(t, 59.9, r.Min)
	assert.Equal(t, 80.7, r.Max)

	gym := IdealWeightRange(1.6, SportGymnastics)
	assert.Equal(t, 43.5, gym.Min)
	assert.Equal(t, 56.3, gym.Max)

	assert.Equal(t, r, IdealWeightRange(1.8, Sport("curling")))
}

func TestIdealWeightRangeOrdered(t *testing.T) {
	for _, p := range Sports() {
		for h := 0.5; h <= 2.5; h += 0.01 {
			r := IdealWeightRange(h, p.Sport)
			assert.LessOrEqual(t, r.Min, r.Max, "sport=%s h=%v", p.Sport, h)
		}
	}
}

func TestVO2MaxEstimate(t *testing.T) {
	tests := []struct {
		name     string
		gender   Gender
		age      float64
		level    ActivityLevel
		sessions int
		want     int
	}{
		{"young active male", GenderMale, 20, ActivityActive, 4, 64},
		{"older sedentary female", GenderFemale, 50, ActivitySedentary, 0, 30},
		{"gym adjustment capped", GenderMale, 30, ActivityLight, 12, 55},
		{"other uses female base", GenderOther, 30, ActivityModerate, 2, 43},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VO2MaxEstimate(tt.gender, tt.age, tt.level, tt.sessions))
		})
	}
}

func TestWaterIntakeMl(t *testing.T) {
	assert.Equal(t, 2310, WaterIntakeMl(70))
	assert.Equal(t, 2013, WaterIntakeMl(61))
}

func TestComputeHealthMetrics(t *testing.T) {
	a := AnthropometricInput{HeightCm: 170, WeightKg: 70, AgeYears: 30, Gender: GenderMale}
	l := LifestyleInput{
		ActivityLevel:      ActivityModerate,
		GymSessionsPerWeek: 3,
		SleepHours:         8,
		DietPreference:     DietBalanced,
		FitnessGoal:        GoalWeightLoss,
	}

	m, err := ComputeHealthMetrics(a, l, SportGeneral)
	require.NoError(t, err)

	assert.Equal(t, 24.2, m.BMI)
	assert.Equal(t, 1618, m.BMR)
	assert.Equal(t, 2508, m.TDEE)
	assert.Equal(t, 2008, m.AdjustedTDEE)
	assert.Equal(t, 19.7, m.BodyFatEstimate)
	assert.False(t, m.BodyFatMeasured)
	assert.Equal(t, 2310, m.WaterIntakeMl)
	assert.Equal(t, 55, m.VO2MaxEstimate)
	assert.InDelta(t, m.AdjustedTDEE, m.Macros.Calories(), 8)
	assert.LessOrEqual(t, m.IdealWeightRange.Min, m.IdealWeightRange.Max)
}

func TestComputeHealthMetricsMeasuredBodyFat(t *testing.T) {
	bf := 1.5
	a := AnthropometricInput{HeightCm: 180, WeightKg: 75, AgeYears: 25, Gender: GenderMale, BodyFatPercent: &bf}
	m, err := ComputeHealthMetrics(a, LifestyleInput{ActivityLevel: ActivityActive}, SportRunning)
	require.NoError(t, err)
	assert.True(t, m.BodyFatMeasured)
	assert.Equal(t, BodyFatFloor, m.BodyFatEstimate)

	bf = 14.25
	m, err = ComputeHealthMetrics(a, LifestyleInput{ActivityLevel: ActivityActive}, SportRunning)
	require.NoError(t, err)
	assert.Equal(t, 14.3, m.BodyFatEstimate)
}

func TestComputeHealthMetricsRejectsInvalid(t *testing.T) {
	valid := AnthropometricInput{HeightCm: 170, WeightKg: 70, AgeYears: 30, Gender: GenderFemale}
	tests := []struct {
		name  string
		mut   func(a *AnthropometricInput, l *LifestyleInput)
		field string
	}{
		{"zero age", func(a *AnthropometricInput, _ *LifestyleInput) { a.AgeYears = 0 }, "age_years"},
		{"negative weight", func(a *AnthropometricInput, _ *LifestyleInput) { a.WeightKg = -1 }, "weight_kg"},
		{"height in inches by mistake", func(a *AnthropometricInput, _ *LifestyleInput) { a.HeightCm = 670 }, "height_cm"},
		{"unknown gender", func(a *AnthropometricInput, _ *LifestyleInput) { a.Gender = "x" }, "gender"},
		{"height underflows", func(a *AnthropometricInput, _ *LifestyleInput) { a.HeightCm = 1e-170 }, "height_cm"},
		{"height in metres by mistake", func(a *AnthropometricInput, _ *LifestyleInput) { a.HeightCm = 1.7 }, "height_cm"},
		{"weight under floor", func(a *AnthropometricInput, _ *LifestyleInput) { a.WeightKg = 1 }, "weight_kg"},
		{"age under one year", func(a *AnthropometricInput, _ *LifestyleInput) { a.AgeYears = 0.5 }, "age_years"},
		{"negative sleep", func(_ *AnthropometricInput, l *LifestyleInput) { l.SleepHours = -1 }, "sleep_hours"},
		{"negative sessions", func(_ *AnthropometricInput, l *LifestyleInput) { l.GymSessionsPerWeek = -2 }, "gym_sessions_per_week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, l := valid, LifestyleInput{ActivityLevel: ActivityLight}
			tt.mut(&a, &l)
			m, err := ComputeHealthMetrics(a, l, SportGeneral)
			var inv *InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tt.field, inv.Field)
			assert.Equal(t, HealthMetrics{}, m)
		})
	}
}

func TestComputeHealthMetricsAtBounds(t *testing.T) {
	heights := []float64{MinHeightCm, 170, MaxHeightCm}
	weights := []float64{MinWeightKg, 70, MaxWeightKg}
	ages := []float64{MinAgeYears, 30, MaxAgeYears}
	goals := []FitnessGoal{GoalWeightLoss, GoalMuscleGain, GoalMaintenance}

	for _, h := range heights {
		for _, w := range weights {
			for _, age := range ages {
				for _, g := range []Gender{GenderMale, GenderFemale} {
					for _, goal := range goals {
						a := AnthropometricInput{HeightCm: h, WeightKg: w, AgeYears: age, Gender: g}
						l := LifestyleInput{ActivityLevel: ActivitySedentary, FitnessGoal: goal}
						m, err := ComputeHealthMetrics(a, l, SportGeneral)
						require.NoError(t, err)

						msg := "h=%v w=%v age=%v g=%s goal=%s"
						assert.False(t, math.IsInf(m.BMI, 0) || math.IsNaN(m.BMI), msg, h, w, age, g, goal)
						assert.LessOrEqual(t, m.BMI, 2600.0, msg, h, w, age, g, goal)
						assert.GreaterOrEqual(t, m.BMR, MinBMR, msg, h, w, age, g, goal)
						assert.Positive(t, m.TDEE, msg, h, w, age, g, goal)
						assert.Positive(t, m.AdjustedTDEE, msg, h, w, age, g, goal)
						assert.GreaterOrEqual(t, m.Macros.ProteinG, 0, msg, h, w, age, g, goal)
						assert.GreaterOrEqual(t, m.Macros.CarbsG, 0, msg, h, w, age, g, goal)
						assert.GreaterOrEqual(t, m.Macros.FatG, 0, msg, h, w, age, g, goal)
						assert.InDelta(t, m.AdjustedTDEE, m.Macros.Calories(), 8, msg, h, w, age, g, goal)

						_, err = json.Marshal(m)
						assert.NoError(t, err)
					}
				}
			}
		}
	}
}
