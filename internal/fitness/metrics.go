package fitness

import "math"

// Formula constants. The male body-fat baseline is -5.4; an older copy of
// this formula used -16.2 and is not supported.
const (
	bmrWeightFactor = 10.0
	bmrHeightFactor = 6.25
	bmrAgeFactor    = 5.0
	bmrMaleOffset   = 5.0
	bmrFemaleOffset = -161.0
	MinBMR          = 500

	bodyFatBMIFactor    = 1.2
	bodyFatAgeFactor    = 0.23
	bodyFatGenderFactor = 10.8
	bodyFatOffset       = -5.4
	BodyFatFloor        = 3.0

	weightLossDeficit = 500
	muscleGainSurplus = 300

	waterMlPerKg = 33.0

	vo2MaleBase      = 45.0
	vo2FemaleBase    = 35.0
	vo2AgePivot      = 30.0
	vo2AgeFactor     = 0.3
	vo2SessionFactor = 1.5
	vo2MaxGymAdj     = 10.0

	minRecommendedSleepHours = 7.0
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var vo2ActivityAdjustments = map[ActivityLevel]float64{
	ActivitySedentary:  -5,
	ActivityLight:      0,
	ActivityModerate:   5,
	ActivityActive:     10,
	ActivityVeryActive: 15,
}

var proteinPerKg = map[FitnessGoal]float64{
	GoalWeightLoss: 1.8,
	GoalMuscleGain: 2.2,
}

var fatShare = map[FitnessGoal]float64{
	GoalWeightLoss: 0.25,
	GoalMuscleGain: 0.3,
}

const (
	defaultProteinPerKg = 1.6
	defaultFatShare     = 0.3
)

// ComputeHealthMetrics validates the inputs and derives the full metrics
// bundle. The only error returned is *InvalidInputError.
func ComputeHealthMetrics(a AnthropometricInput, l LifestyleInput, s Sport) (HealthMetrics, error) {
	if err := ValidateAnthropometric(a); err != nil {
		return HealthMetrics{}, err
	}
	if err := ValidateLifestyle(l); err != nil {
		return HealthMetrics{}, err
	}

	bmi, err := BMI(a.WeightKg, a.HeightCm)
	if err != nil {
		return HealthMetrics{}, err
	}

	bmr := BMR(a.Gender, a.WeightKg, a.HeightCm, a.AgeYears)
	tdee := TDEE(bmr, l.ActivityLevel)
	adjusted := AdjustedTDEE(tdee, l.FitnessGoal)

	m := HealthMetrics{
		BMI:              bmi,
		BodyFatEstimate:  BodyFatEstimate(bmi, a.AgeYears, a.Gender),
		BMR:              bmr,
		TDEE:             tdee,
		AdjustedTDEE:     adjusted,
		IdealWeightRange: IdealWeightRange(a.HeightCm/100, s),
		Macros:           CalculateMacros(a.WeightKg, adjusted, l.FitnessGoal),
		WaterIntakeMl:    WaterIntakeMl(a.WeightKg),
		VO2MaxEstimate:   VO2MaxEstimate(a.Gender, a.AgeYears, l.ActivityLevel, l.GymSessionsPerWeek),
	}
	if a.BodyFatPercent != nil {
		m.BodyFatEstimate = math.Max(BodyFatFloor, roundTo(*a.BodyFatPercent, 1))
		m.BodyFatMeasured = true
	}
	return m, nil
}

// BMI returns weight/height² rounded to one decimal. Height is in centimetres.
func BMI(weightKg, heightCm float64) (float64, error) {
	if err := positive("weight_kg", weightKg, MinWeightKg, math.MaxFloat64); err != nil {
		return 0, err
	}
	if err := positive("height_cm", heightCm, MinHeightCm, math.MaxFloat64); err != nil {
		return 0, err
	}
	h := heightCm / 100
	bmi := roundTo(weightKg/(h*h), 1)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, invalid("weight_kg", "yields a non-finite BMI for height %v cm", heightCm)
	}
	return bmi, nil
}

// BMR uses Mifflin–St Jeor. GenderOther takes the female offset. The
// formula goes negative for very small, very old bodies, so the result is
// clamped at MinBMR.
func BMR(g Gender, weightKg, heightCm, age float64) int {
	bmr := bmrWeightFactor*weightKg + bmrHeightFactor*heightCm - bmrAgeFactor*age
	if g == GenderMale {
		bmr += bmrMaleOffset
	} else {
		bmr += bmrFemaleOffset
	}
	return max(MinBMR, int(math.Round(bmr)))
}

// TDEE scales bmr by the activity multiplier; unknown levels count as moderate.
func TDEE(bmr int, level ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivityModerate]
	}
	return int(math.Round(float64(bmr) * mult))
}

func AdjustedTDEE(tdee int, goal FitnessGoal) int {
	switch goal {
	case GoalWeightLoss:
		return tdee - weightLossDeficit
	case GoalMuscleGain:
		return tdee + muscleGainSurplus
	default:
		return tdee
	}
}

// BodyFatEstimate is the BMI-based (Deurenberg style) estimate, floored at
// BodyFatFloor and rounded to one decimal.
func BodyFatEstimate(bmi, age float64, g Gender) float64 {
	genderMultiplier := 0.0
	if g == GenderMale {
		genderMultiplier = 1
	}
	bf := bodyFatBMIFactor*bmi + bodyFatAgeFactor*age - bodyFatGenderFactor*genderMultiplier + bodyFatOffset
	return math.Max(BodyFatFloor, roundTo(bf, 1))
}

// CalculateMacros splits adjustedTDEE into protein, fat and carbohydrate
// grams. Carbs take the remainder so the split sums back to adjustedTDEE
// within rounding. Protein is capped at what remains after fat, so no macro
// goes negative.
func CalculateMacros(weightKg float64, adjustedTDEE int, goal FitnessGoal) Macros {
	ppk, ok := proteinPerKg[goal]
	if !ok {
		ppk = defaultProteinPerKg
	}
	fs, ok := fatShare[goal]
	if !ok {
		fs = defaultFatShare
	}

	kcal := max(0, adjustedTDEE)
	fat := int(math.Round(float64(kcal) * fs / 9))
	protein := int(math.Round(weightKg * ppk))
	if ceiling := (kcal - fat*9) / 4; protein > ceiling {
		protein = ceiling
	}
	carbs := int(math.Round(float64(kcal-protein*4-fat*9) / 4))

	return Macros{ProteinG: protein, CarbsG: carbs, FatG: fat}
}

// IdealWeightRange maps the sport's normal BMI band onto a weight interval
// for the given height in metres.
func IdealWeightRange(heightM float64, s Sport) WeightRange {
	p := LookupSport(s)
	h2 := heightM * heightM
	return WeightRange{
		Min: roundTo(p.NormalRange[0]*h2, 1),
		Max: roundTo(p.NormalRange[1]*h2, 1),
	}
}

func VO2MaxEstimate(g Gender, age float64, level ActivityLevel, gymSessions int) int {
	base := vo2FemaleBase
	if g == GenderMale {
		base = vo2MaleBase
	}
	ageAdj := math.Max(0, (vo2AgePivot-age)*vo2AgeFactor)
	activityAdj, ok := vo2ActivityAdjustments[level]
	if !ok {
		activityAdj = vo2ActivityAdjustments[ActivityModerate]
	}
	gymAdj := math.Min(vo2MaxGymAdj, float64(gymSessions)*vo2SessionFactor)
	return int(math.Round(base + ageAdj + activityAdj + gymAdj))
}

func WaterIntakeMl(weightKg float64) int {
	return int(math.Round(weightKg * waterMlPerKg))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
