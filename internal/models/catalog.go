// ABOUTME: Built-in catalog of workout types, gym categories, and exercises.
// ABOUTME: Defines which exercises are time-based vs sets/reps-based.
package models

// WorkoutType is a freeform activity that can be timed from the home flow.
type WorkoutType struct {
	Name string
	Icon string
}

// WorkoutTypes are the activities offered for timed sessions.
var WorkoutTypes = []WorkoutType{
	{Name: "Running", Icon: "🏃"},
	{Name: "Gym", Icon: "🏋️"},
	{Name: "Volleyball", Icon: "🏐"},
	{Name: "Cricket", Icon: "🏏"},
	{Name: "Cycling", Icon: "🚴"},
	{Name: "Yoga", Icon: "🧘"},
}

// GymCategory groups exercises by muscle group.
type GymCategory struct {
	Name      string
	Icon      string
	Exercises []string
}

// GymCategories are the muscle-group categories for gym logging.
var GymCategories = []GymCategory{
	{
		Name:      "Chest",
		Icon:      "💪",
		Exercises: []string{"Bench Press", "Incline Dumbbell Press", "Chest Fly", "Push Ups", "Cable Crossover"},
	},
	{
		Name:      "Back",
		Icon:      "🏋️‍♂️",
		Exercises: []string{"Pull Ups", "Deadlift", "Lat Pulldown", "Seated Row"},
	},
	{
		Name:      "Arms",
		Icon:      "🦾",
		Exercises: []string{"Bicep Curl", "Tricep Extension", "Hammer Curl", "Dips"},
	},
	{
		Name:      "Abdominals",
		Icon:      "🧘",
		Exercises: []string{"Crunches", "Plank", "Leg Raise", "Russian Twist"},
	},
	{
		Name:      "Legs",
		Icon:      "🦵",
		Exercises: []string{"Squats", "Leg Press", "Lunges", "Leg Extension"},
	},
	{
		Name:      "Shoulders",
		Icon:      "🏋️",
		Exercises: []string{"Shoulder Press", "Lateral Raise", "Front Raise", "Shrugs"},
	},
}

// timeBasedExercises are logged with a duration instead of sets and reps.
var timeBasedExercises = map[string]bool{
	"Plank":    true,
	"Wall Sit": true,
}

// IsTimeBased reports whether an exercise is logged by time.
func IsTimeBased(exercise string) bool {
	return timeBasedExercises[exercise]
}

// FindWorkoutType looks up a workout type by name (case-sensitive).
func FindWorkoutType(name string) (WorkoutType, bool) {
	for _, w := range WorkoutTypes {
		if w.Name == name {
			return w, true
		}
	}
	return WorkoutType{}, false
}

// FindGymCategory looks up a gym category by name (case-sensitive).
func FindGymCategory(name string) (GymCategory, bool) {
	for _, c := range GymCategories {
		if c.Name == name {
			return c, true
		}
	}
	return GymCategory{}, false
}

// HasExercise reports whether the category contains the exercise.
func (c GymCategory) HasExercise(name string) bool {
	for _, e := range c.Exercises {
		if e == name {
			return true
		}
	}
	return false
}
