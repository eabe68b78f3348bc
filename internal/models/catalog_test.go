// ABOUTME: Tests for the built-in workout and exercise catalog.
// ABOUTME: Covers lookups and time-based exercise classification.
package models

import "testing"

func TestFindWorkoutType(t *testing.T) {
	w, ok := FindWorkoutType("Running")
	if !ok {
		t.Fatal("Running not found")
	}
	if w.Icon == "" {
		t.Error("Running has no icon")
	}

	if _, ok := FindWorkoutType("Skydiving"); ok {
		t.Error("unexpected workout type Skydiving")
	}
}

func TestFindGymCategory(t *testing.T) {
	c, ok := FindGymCategory("Legs")
	if !ok {
		t.Fatal("Legs not found")
	}
	if !c.HasExercise("Squats") {
		t.Error("Legs should contain Squats")
	}
	if c.HasExercise("Bench Press") {
		t.Error("Legs should not contain Bench Press")
	}

	if _, ok := FindGymCategory("Cardio"); ok {
		t.Error("unexpected category Cardio")
	}
}

func TestIsTimeBased(t *testing.T) {
	if !IsTimeBased("Plank") {
		t.Error("Plank should be time-based")
	}
	if !IsTimeBased("Wall Sit") {
		t.Error("Wall Sit should be time-based")
	}
	if IsTimeBased("Squats") {
		t.Error("Squats should not be time-based")
	}
}

func TestTimeBasedExercisesAreInCatalog(t *testing.T) {
	// Plank is reachable through the Abdominals category.
	c, ok := FindGymCategory("Abdominals")
	if !ok {
		t.Fatal("Abdominals not found")
	}
	if !c.HasExercise("Plank") {
		t.Error("Abdominals should contain Plank")
	}
}
