package fitness

var focusAreaBullets = map[SimpleBMICategory][3]string{
	SimpleUnderweight: {
		"Increase daily calorie intake with nutrient-dense foods such as nuts, whole grains and lean proteins.",
		"Prioritise progressive strength training to build lean muscle mass.",
		"Eat 5-6 smaller meals spread through the day to reach your calorie target comfortably.",
	},
	SimpleNormal: {
		"Maintain your current weight with a balanced diet built around whole foods.",
		"Combine strength training and cardiovascular exercise for overall fitness.",
		"Track performance goals such as strength, endurance or mobility rather than the scale.",
	},
	SimpleOverweight: {
		"Create a moderate calorie deficit of around 500 kcal per day for gradual fat loss.",
		"Increase daily movement: aim for 8,000-10,000 steps alongside planned workouts.",
		"Keep protein high to preserve muscle while losing fat.",
	},
	SimpleObese: {
		"Start with low-impact activities such as walking, swimming or cycling to protect your joints.",
		"Focus on sustainable dietary changes: reduce processed foods, sugary drinks and portion sizes.",
		"Consider consulting a healthcare professional for a supervised weight-management plan.",
	},
}

const sleepBullet = "Improve sleep: aim for 7-9 hours per night to support recovery, appetite regulation and hormone balance."

var sportBullets = map[Sport]string{
	SportFootball:      "Football: build repeated-sprint ability with interval runs and include agility ladder drills twice a week.",
	SportBasketball:    "Basketball: train vertical jump with plyometrics and strengthen ankles and knees for landing control.",
	SportSwimming:      "Swimming: develop shoulder stability and core strength, and balance pool volume with dryland mobility work.",
	SportRunning:       "Running: follow the 80/20 rule of easy versus hard mileage and add single-leg strength work for injury prevention.",
	SportCycling:       "Cycling: strengthen glutes and hamstrings off the bike and counter long rides with hip-flexor and thoracic mobility.",
	SportTennis:        "Tennis: focus on lateral footwork, rotational core power and rotator-cuff conditioning.",
	SportGymnastics:    "Gymnastics: keep relative strength high with bodyweight progressions and maintain daily flexibility work.",
	SportWeightlifting: "Weightlifting: periodise heavy and technique days, and prioritise hip, ankle and overhead mobility.",
	SportMartialArts:   "Martial arts: combine explosive power training with conditioning rounds that mirror bout length.",
	SportRugby:         "Rugby: build contact resilience with neck and trunk strength and train repeated high-intensity efforts.",
}

const genericSportBullet = "General fitness: mix strength, cardio and mobility sessions across the week and progress gradually."

var emotionalBullets = map[EmotionalState]string{
	EmotionStressed:  "Stress management: include yoga, breathing drills or light walks, and avoid stacking maximal sessions on high-stress days.",
	EmotionAnxious:   "Anxiety support: steady-state cardio and mindful movement can lower anxiety; keep routines predictable.",
	EmotionDepressed: "Mood support: regular moderate exercise, outdoor activity and training with others can lift mood; reach out to a professional if low mood persists.",
	EmotionFatigued:  "Energy management: reduce training volume this week, prioritise sleep and hydration, and favour active recovery.",
	EmotionMotivated: "Use your motivation: set a specific 4-week goal and track progress, but respect rest days to avoid burnout.",
	EmotionConfident: "Build on your confidence: try a new challenge such as a skill, event or personal record attempt while keeping good form.",
}

// FocusAreas returns the three category bullets, followed by a sleep bullet
// when sleepHours is under seven.
func FocusAreas(c SimpleBMICategory, sleepHours float64) []string {
	bullets, ok := focusAreaBullets[c]
	if !ok {
		bullets = focusAreaBullets[SimpleNormal]
	}
	out := make([]string, 0, len(bullets)+1)
	out = append(out, bullets[:]...)
	if sleepHours < minRecommendedSleepHours {
		out = append(out, sleepBullet)
	}
	return out
}

func SportBullet(s Sport) string {
	if b, ok := sportBullets[s]; ok {
		return b
	}
	return genericSportBullet
}

// EmotionalBullet returns the advice for e and false for neutral or
// unknown states.
func EmotionalBullet(e EmotionalState) (string, bool) {
	b, ok := emotionalBullets[e]
	return b, ok
}

// CombineBullets orders category bullets, then the sport bullet, then the
// emotional bullet.
func CombineBullets(c SimpleBMICategory, sleepHours float64, s Sport, e EmotionalState) []string {
	out := FocusAreas(c, sleepHours)
	out = append(out, SportBullet(s))
	if b, ok := EmotionalBullet(e); ok {
		out = append(out, b)
	}
	return out
}

// GenerateRecommendations builds the advisory bullets and plan templates
// from already computed metrics. It is deterministic for identical inputs.
func GenerateRecommendations(m HealthMetrics, l LifestyleInput, s Sport, e EmotionalState) RecommendationSet {
	return RecommendationSet{
		FocusAreas:  CombineBullets(ClassifySimple(m.BMI), l.SleepHours, s, e),
		MealPlan:    MealPlanTemplate(l.DietPreference),
		WorkoutPlan: WorkoutPlanTemplate(l.GymSessionsPerWeek, l.FitnessGoal, m.BMI),
	}
}
