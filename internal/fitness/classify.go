package fitness

// DetailedBMICategory is the 8-band WHO scale.
type DetailedBMICategory string

const (
	DetailedSevereThinness   DetailedBMICategory = "severe_thinness"
	DetailedModerateThinness DetailedBMICategory = "moderate_thinness"
	DetailedMildThinness     DetailedBMICategory = "mild_thinness"
	DetailedNormal           DetailedBMICategory = "normal"
	DetailedOverweight       DetailedBMICategory = "overweight"
	DetailedObeseI           DetailedBMICategory = "obese_class_1"
	DetailedObeseII          DetailedBMICategory = "obese_class_2"
	DetailedObeseIII         DetailedBMICategory = "obese_class_3"
)

// SimpleBMICategory is the 4-band scale that drives the focus-area rules.
type SimpleBMICategory string

const (
	SimpleUnderweight SimpleBMICategory = "underweight"
	SimpleNormal      SimpleBMICategory = "normal"
	SimpleOverweight  SimpleBMICategory = "overweight"
	SimpleObese       SimpleBMICategory = "obese"
)

type SportBMICategory string

const (
	SportUnderweight SportBMICategory = "underweight"
	SportNormal      SportBMICategory = "normal"
	SportOverweight  SportBMICategory = "overweight"
	SportObese       SportBMICategory = "obese"
)

// Rank orders sport categories from underweight (0) to obese (3).
func (c SportBMICategory) Rank() int {
	switch c {
	case SportUnderweight:
		return 0
	case SportNormal:
		return 1
	case SportOverweight:
		return 2
	default:
		return 3
	}
}

func ClassifyDetailed(bmi float64) DetailedBMICategory {
	switch {
	case bmi < 16:
		return DetailedSevereThinness
	case bmi < 17:
		return DetailedModerateThinness
	case bmi < 18.5:
		return DetailedMildThinness
	case bmi < 25:
		return DetailedNormal
	case bmi < 30:
		return DetailedOverweight
	case bmi < 35:
		return DetailedObeseI
	case bmi < 40:
		return DetailedObeseII
	default:
		return DetailedObeseIII
	}
}

func ClassifySimple(bmi float64) SimpleBMICategory {
	switch {
	case bmi < 18.5:
		return SimpleUnderweight
	case bmi < 25:
		return SimpleNormal
	case bmi < 30:
		return SimpleOverweight
	default:
		return SimpleObese
	}
}

// ClassifySport applies the sport table. The normal upper bound is
// inclusive and the overweight lower bound exclusive; the table is
// contiguous, so the result never regresses as bmi grows.
func ClassifySport(bmi float64, s Sport) SportBMICategory {
	p := LookupSport(s)
	switch {
	case bmi < p.UnderweightThreshold:
		return SportUnderweight
	case bmi >= p.NormalRange[0] && bmi <= p.NormalRange[1]:
		return SportNormal
	case bmi > p.OverweightRange[0] && bmi < p.OverweightRange[1]:
		return SportOverweight
	default:
		return SportObese
	}
}

func Classify(bmi float64, s Sport) Classification {
	return Classification{
		Detailed: ClassifyDetailed(bmi),
		Simple:   ClassifySimple(bmi),
		Sport:    ClassifySport(bmi, s),
	}
}
