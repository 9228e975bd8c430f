package store

import (
	"context"
	"encoding/json"
	"testing"

	"fitclub/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load_SeedsWhenEmpty(t *testing.T) {
	s := New(kv.NewMemory(), testSeeds(), WithClock(fixedClock))

	require.NoError(t, s.Load(context.Background()))
	require.True(t, s.Ready())

	assert.Len(t, s.Classes(), 3)
	assert.Empty(t, s.WorkoutHistory())
	assert.Empty(t, s.Goals())
	assert.Equal(t, 0, s.Nutrition().WaterIntake)
	assert.NotEmpty(t, s.Catalog())
}

func TestStore_Load_PersistedStateWins(t *testing.T) {
	mem := kv.NewMemory()

	persisted := []ClassSession{
		{ID: "c1", Name: "Morning Yoga", Capacity: 15, Enrolled: 12, Booked: true},
	}
	data, err := json.Marshal(persisted)
	require.NoError(t, err)
	mem.Put("classes", data)

	s := New(mem, testSeeds(), WithClock(fixedClock))
	require.NoError(t, s.Load(context.Background()))

	classes := s.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, 12, classes[0].Enrolled)
	assert.True(t, classes[0].Booked)
}

func TestStore_Load_CorruptBlobIsolation(t *testing.T) {
	mem := kv.NewMemory()

	// goals blob is garbage; classes and nutrition are valid.
	mem.Put("goals", []byte(`{{not json`))

	classes, err := json.Marshal([]ClassSession{{ID: "c9", Name: "Boxing", Capacity: 10, Enrolled: 2}})
	require.NoError(t, err)
	mem.Put("classes", classes)

	nutrition, err := json.Marshal(NutritionState{Date: "2024-06-10", WaterIntake: 4, MealLog: []MealEntry{}})
	require.NoError(t, err)
	mem.Put("nutrition", nutrition)

	s := New(mem, testSeeds(), WithClock(fixedClock))
	require.NoError(t, s.Load(context.Background()))

	// Goals fell back to seed, the rest loaded from their own blobs.
	assert.Empty(t, s.Goals())
	require.Len(t, s.Classes(), 1)
	assert.Equal(t, "c9", s.Classes()[0].ID)
	assert.Equal(t, 4, s.Nutrition().WaterIntake)
}

func TestStore_Load_ReadErrorFallsBackToSeed(t *testing.T) {
	mem := kv.NewMemory()
	mem.FailGets = map[string]error{"classes": assert.AnError}

	s := New(mem, testSeeds(), WithClock(fixedClock))
	require.NoError(t, s.Load(context.Background()))

	assert.Len(t, s.Classes(), 3)
}

func TestStore_Load_WaterResetOnStaleDate(t *testing.T) {
	mem := kv.NewMemory()

	stale, err := json.Marshal(NutritionState{
		Date:        "2024-06-09",
		WaterIntake: 7,
		MealLog:     []MealEntry{{Date: "2024-06-09", Name: "Oatmeal", Calories: 350}},
	})
	require.NoError(t, err)
	mem.Put("nutrition", stale)

	s := New(mem, testSeeds(), WithClock(fixedClock))
	require.NoError(t, s.Load(context.Background()))

	n := s.Nutrition()
	assert.Equal(t, 0, n.WaterIntake)
	assert.Equal(t, "2024-06-10", n.Date)
	require.Len(t, n.MealLog, 1)
	assert.Equal(t, "Oatmeal", n.MealLog[0].Name)
}

// Simulated app restart: a second store over the same kv must reproduce the
// first store's collections exactly.
func TestStore_Load_RestartRoundTrip(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()

	first := New(mem, testSeeds(), WithClock(fixedClock), WithIDGenerator(sequentialIDs()))
	require.NoError(t, first.Load(ctx))

	_, err := first.BookClass(ctx, "c1")
	require.NoError(t, err)
	goal, err := first.AddGoal(ctx, GoalInput{Name: "Run 5K", Target: "5km", Deadline: "2024-12-31"})
	require.NoError(t, err)
	_, err = first.UpdateGoalProgress(ctx, goal.ID, "3km", 60)
	require.NoError(t, err)
	_, err = first.LogWorkout(ctx, WorkoutInput{Workout: "Yoga", Duration: 30, CaloriesBurned: 120})
	require.NoError(t, err)
	_, err = first.AddWater(ctx, 5)
	require.NoError(t, err)
	_, err = first.LogMeal(ctx, MealInput{Name: "Oatmeal", Calories: 350})
	require.NoError(t, err)

	second := New(mem, testSeeds(), WithClock(fixedClock))
	require.NoError(t, second.Load(ctx))

	assert.Equal(t, first.Classes(), second.Classes())
	assert.Equal(t, first.Goals(), second.Goals())
	assert.Equal(t, first.WorkoutHistory(), second.WorkoutHistory())
	assert.Equal(t, first.Nutrition(), second.Nutrition())
}
