package fitness

import "fmt"

// Assess runs the whole pipeline on a raw snapshot.
func Assess(raw RawInput) (Assessment, error) {
	p, err := Normalize(raw)
	if err != nil {
		return Assessment{}, err
	}
	return AssessProfile(p)
}

func AssessProfile(p Profile) (Assessment, error) {
	m, err := ComputeHealthMetrics(p.Anthropometric, p.Lifestyle, p.Sport)
	if err != nil {
		return Assessment{}, err
	}
	return Assessment{
		Profile:         p,
		Metrics:         m,
		Classification:  Classify(m.BMI, p.Sport),
		Recommendations: GenerateRecommendations(m, p.Lifestyle, p.Sport, p.EmotionalState),
	}, nil
}

// CacheKey renders the canonical input tuple. Two profiles with the same
// key always produce the same Assessment.
func (p Profile) CacheKey() string {
	bf := "-"
	if p.Anthropometric.BodyFatPercent != nil {
		bf = fmt.Sprintf("%g", *p.Anthropometric.BodyFatPercent)
	}
	a, l := p.Anthropometric, p.Lifestyle
	return fmt.Sprintf("%g|%g|%g|%s|%s|%s|%d|%g|%g|%s|%s|%s|%s",
		a.HeightCm, a.WeightKg, a.AgeYears, a.Gender, bf,
		l.ActivityLevel, l.GymSessionsPerWeek, l.TimeInGymHours, l.SleepHours, l.DietPreference, l.FitnessGoal,
		p.Sport, p.EmotionalState)
}

// Clone returns a deep copy. Cached assessments are handed out as clones so
// one caller's edits never reach another.
func (a Assessment) Clone() Assessment {
	out := a
	if bf := a.Profile.Anthropometric.BodyFatPercent; bf != nil {
		v := *bf
		out.Profile.Anthropometric.BodyFatPercent = &v
	}
	if a.Recommendations.FocusAreas != nil {
		out.Recommendations.FocusAreas = append([]string(nil), a.Recommendations.FocusAreas...)
	}
	if a.Recommendations.WorkoutPlan.Sessions != nil {
		out.Recommendations.WorkoutPlan.Sessions = cloneSessions(a.Recommendations.WorkoutPlan.Sessions)
	}
	return out
}
