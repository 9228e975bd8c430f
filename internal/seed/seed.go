// Package seed supplies the default catalog used when no persisted state
// exists for a collection.
package seed

import "fitclub/internal/store"

// Default returns the initial class schedule, workout catalog and nutrition
// state for a fresh install. Class ids are stable across reloads; persisted
// bookings are matched against them by id.
func Default() store.Seeds {
	return store.Seeds{
		Classes: []store.ClassSession{
			{
				ID:          "c1",
				Name:        "Morning Yoga",
				Day:         "Monday",
				Time:        "07:00",
				Duration:    60,
				Capacity:    15,
				Enrolled:    8,
				Instructor:  "Sarah Johnson",
				Description: "Start your week with a calm vinyasa flow suitable for all levels.",
			},
			{
				ID:          "c2",
				Name:        "HIIT Blast",
				Day:         "Tuesday",
				Time:        "18:30",
				Duration:    45,
				Capacity:    20,
				Enrolled:    17,
				Instructor:  "Mike Torres",
				Description: "High-intensity interval training with bodyweight and kettlebell circuits.",
			},
			{
				ID:          "c3",
				Name:        "Spin Class",
				Day:         "Wednesday",
				Time:        "06:30",
				Duration:    50,
				Capacity:    12,
				Enrolled:    12,
				Instructor:  "Emma Lee",
				Description: "Indoor cycling intervals set to music. Bring a towel.",
			},
			{
				ID:          "c4",
				Name:        "Strength Foundations",
				Day:         "Thursday",
				Time:        "19:00",
				Duration:    60,
				Capacity:    10,
				Enrolled:    6,
				Instructor:  "Mike Torres",
				Description: "Barbell basics: squat, bench and deadlift technique work.",
			},
			{
				ID:          "c5",
				Name:        "Pilates Core",
				Day:         "Friday",
				Time:        "12:15",
				Duration:    45,
				Capacity:    15,
				Enrolled:    9,
				Instructor:  "Sarah Johnson",
				Description: "Mat pilates focused on core stability and posture.",
			},
			{
				ID:          "c6",
				Name:        "Weekend Bootcamp",
				Day:         "Saturday",
				Time:        "09:00",
				Duration:    75,
				Capacity:    25,
				Enrolled:    21,
				Instructor:  "Alex Kim",
				Description: "Outdoor-style circuit covering cardio, strength and mobility.",
			},
		},
		Catalog: []store.WorkoutTemplate{
			{Name: "Treadmill Run", Category: "Cardio", Duration: 30, Level: "Beginner"},
			{Name: "Full Body Strength", Category: "Strength", Duration: 45, Level: "Intermediate"},
			{Name: "Yoga", Category: "Flexibility", Duration: 30, Level: "Beginner"},
			{Name: "Rowing Intervals", Category: "Cardio", Duration: 20, Level: "Intermediate"},
			{Name: "Kettlebell Circuit", Category: "Strength", Duration: 40, Level: "Advanced"},
			{Name: "Stretch & Mobility", Category: "Flexibility", Duration: 15, Level: "Beginner"},
		},
		History: []store.WorkoutLogEntry{},
		Goals:   []store.Goal{},
		Nutrition: store.NutritionState{
			WaterIntake: 0,
			MealLog:     []store.MealEntry{},
		},
	}
}
