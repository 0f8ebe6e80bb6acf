package fitness

var mealPlans = map[DietPreference]MealPlan{
	DietBalanced: {
		Breakfast: "Oatmeal with berries, a spoon of nut butter and a glass of milk or yogurt",
		Lunch:     "Grilled chicken with brown rice, mixed vegetables and olive oil dressing",
		Dinner:    "Baked salmon with sweet potato and steamed broccoli",
		Snacks:    "Greek yogurt, a piece of fruit and a handful of almonds",
	},
	DietVegetarian: {
		Breakfast: "Vegetable omelette with whole-grain toast and fruit",
		Lunch:     "Lentil and chickpea salad with feta, quinoa and leafy greens",
		Dinner:    "Paneer or tofu stir-fry with mixed vegetables and brown rice",
		Snacks:    "Cottage cheese with fruit, hummus with carrot sticks",
	},
	DietVegan: {
		Breakfast: "Tofu scramble with spinach, whole-grain toast and soy milk",
		Lunch:     "Quinoa bowl with black beans, roasted vegetables and avocado",
		Dinner:    "Tempeh and vegetable curry with brown rice",
		Snacks:    "Roasted chickpeas, fruit with almond butter, plant-protein smoothie",
	},
	DietKeto: {
		Breakfast: "Eggs scrambled in butter with avocado and spinach",
		Lunch:     "Grilled chicken thighs over leafy greens with olive oil and cheese",
		Dinner:    "Pan-seared steak or salmon with buttered asparagus",
		Snacks:    "Cheese cubes, macadamia nuts, celery with cream cheese",
	},
	DietPaleo: {
		Breakfast: "Eggs with sautéed vegetables and fresh berries",
		Lunch:     "Grass-fed beef salad with mixed greens, nuts and olive oil",
		Dinner:    "Roast chicken with sweet potato and roasted root vegetables",
		Snacks:    "Apple slices with almond butter, beef jerky, mixed nuts",
	},
	DietMediterranean: {
		Breakfast: "Greek yogurt with honey, walnuts and fresh figs",
		Lunch:     "Whole-grain pita with falafel, tabbouleh and tzatziki",
		Dinner:    "Grilled fish with olive oil, roasted vegetables and a lentil side",
		Snacks:    "Olives, hummus with vegetables, a handful of almonds",
	},
}

// MealPlanTemplate returns the fixed template for diet. Diets without their
// own template, low_carb and high_protein included, use balanced.
func MealPlanTemplate(diet DietPreference) MealPlan {
	if p, ok := mealPlans[diet]; ok {
		return p
	}
	return mealPlans[DietBalanced]
}

const overweightBMI = 25.0

type cardioBucket string

const (
	cardioWeightLoss cardioBucket = "weight_loss"
	cardioMuscleGain cardioBucket = "muscle_gain"
	cardioOther      cardioBucket = "other"
)

func cardioBucketFor(goal FitnessGoal) cardioBucket {
	switch goal {
	case GoalWeightLoss:
		return cardioWeightLoss
	case GoalMuscleGain:
		return cardioMuscleGain
	default:
		return cardioOther
	}
}

// Beginner-tier cardio is additionally keyed by whether bmi >= 25.
var beginnerCardio = map[cardioBucket][2]string{
	cardioWeightLoss: {
		"20-30 minutes of moderate cardio (jogging, cycling, rowing) 3 times per week",
		"30-40 minutes of low-impact cardio (brisk walking, cycling, swimming) 4-5 times per week",
	},
	cardioMuscleGain: {
		"15-20 minutes of light cardio twice per week to support recovery",
		"20 minutes of low-impact cardio (walking, cycling) 2-3 times per week",
	},
	cardioOther: {
		"20-30 minutes of moderate cardio 2-3 times per week",
		"30 minutes of low-impact cardio (walking, swimming) 3-4 times per week",
	},
}

var intermediateCardio = map[cardioBucket]string{
	cardioWeightLoss: "25-35 minutes of cardio after lifting or on off days, 4 times per week, including one interval session",
	cardioMuscleGain: "15-20 minutes of light cardio 2 times per week on rest days",
	cardioOther:      "20-30 minutes of mixed steady-state and interval cardio 3 times per week",
}

var advancedCardio = map[cardioBucket]string{
	cardioWeightLoss: "20 minutes of HIIT 3 times per week plus 30-45 minutes of low-intensity steady-state cardio on 2 days",
	cardioMuscleGain: "10-15 minutes of low-intensity cardio after training 2-3 times per week",
	cardioOther:      "20-30 minutes of cardio 3-4 times per week, alternating intervals and steady state",
}

var fullBodySessions = []WorkoutSession{
	{
		Day:       "Day 1",
		Focus:     "Full Body A",
		Exercises: []string{"Goblet Squats 3x10", "Push-ups 3x10", "Dumbbell Rows 3x10", "Plank 3x30s"},
	},
	{
		Day:       "Day 2",
		Focus:     "Full Body B",
		Exercises: []string{"Romanian Deadlifts 3x10", "Dumbbell Shoulder Press 3x10", "Lat Pulldowns 3x10", "Walking Lunges 3x10 each leg"},
	},
}

var upperLowerSessions = []WorkoutSession{
	{
		Day:       "Day 1",
		Focus:     "Upper Body (Strength)",
		Exercises: []string{"Bench Press 4x6", "Barbell Rows 4x6", "Overhead Press 3x8", "Pull-ups 3x8"},
	},
	{
		Day:       "Day 2",
		Focus:     "Lower Body (Strength)",
		Exercises: []string{"Back Squats 4x6", "Romanian Deadlifts 3x8", "Leg Press 3x10", "Calf Raises 3x15"},
	},
	{
		Day:       "Day 3",
		Focus:     "Upper Body (Hypertrophy)",
		Exercises: []string{"Incline Dumbbell Press 3x12", "Seated Cable Rows 3x12", "Lateral Raises 3x15", "Bicep Curls 3x12", "Tricep Pushdowns 3x12"},
	},
	{
		Day:       "Day 4",
		Focus:     "Lower Body (Hypertrophy)",
		Exercises: []string{"Front Squats 3x10", "Walking Lunges 3x12 each leg", "Leg Curls 3x12", "Hip Thrusts 3x12"},
	},
}

var bodyPartSessions = []WorkoutSession{
	{
		Day:       "Day 1",
		Focus:     "Chest & Triceps",
		Exercises: []string{"Bench Press 4x8", "Incline Dumbbell Press 3x10", "Cable Flyes 3x12", "Skull Crushers 3x10", "Dips 3x10"},
	},
	{
		Day:       "Day 2",
		Focus:     "Back & Biceps",
		Exercises: []string{"Deadlifts 4x5", "Pull-ups 4x8", "Barbell Rows 3x10", "Face Pulls 3x15", "Hammer Curls 3x12"},
	},
	{
		Day:       "Day 3",
		Focus:     "Legs",
		Exercises: []string{"Back Squats 4x8", "Leg Press 3x12", "Romanian Deadlifts 3x10", "Leg Extensions 3x12", "Calf Raises 4x15"},
	},
	{
		Day:       "Day 4",
		Focus:     "Shoulders & Core",
		Exercises: []string{"Overhead Press 4x8", "Lateral Raises 3x15", "Rear Delt Flyes 3x15", "Hanging Leg Raises 3x12", "Plank 3x45s"},
	},
	{
		Day:       "Day 5",
		Focus:     "Arms & Conditioning",
		Exercises: []string{"Barbell Curls 3x10", "Close-Grip Bench Press 3x10", "Cable Curls 3x12", "Overhead Tricep Extensions 3x12", "Kettlebell Swings 3x20"},
	},
}

// WorkoutPlanTemplate selects the split by weekly gym sessions: up to two
// gets full body, three or four gets upper/lower, five or more gets a
// body-part split.
func WorkoutPlanTemplate(gymSessionsPerWeek int, goal FitnessGoal, bmi float64) WorkoutPlan {
	bucket := cardioBucketFor(goal)

	switch {
	case gymSessionsPerWeek <= 2:
		cardio := beginnerCardio[bucket]
		idx := 0
		if bmi >= overweightBMI {
			idx = 1
		}
		return WorkoutPlan{
			Frequency: "2 days per week",
			Sessions:  cloneSessions(fullBodySessions),
			Cardio:    cardio[idx],
		}
	case gymSessionsPerWeek <= 4:
		return WorkoutPlan{
			Frequency: "4 days per week",
			Sessions:  cloneSessions(upperLowerSessions),
			Cardio:    intermediateCardio[bucket],
		}
	default:
		return WorkoutPlan{
			Frequency: "5 days per week",
			Sessions:  cloneSessions(bodyPartSessions),
			Cardio:    advancedCardio[bucket],
		}
	}
}

// cloneSessions copies the template so callers cannot mutate the tables.
func cloneSessions(src []WorkoutSession) []WorkoutSession {
	out := make([]WorkoutSession, len(src))
	for i, s := range src {
		out[i] = WorkoutSession{
			Day:       s.Day,
			Focus:     s.Focus,
			Exercises: append([]string(nil), s.Exercises...),
		}
	}
	return out
}
