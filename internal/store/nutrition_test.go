package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitclub/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddWater(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	n, err := s.AddWater(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n.WaterIntake)

	n, err = s.AddWater(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, n.WaterIntake)
}

func TestStore_AddWater_ClampedAtZero(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddWater(ctx, 2)
	require.NoError(t, err)

	n, err := s.AddWater(ctx, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, n.WaterIntake)
}

func TestStore_AddWater_ResetsOnDateRollover(t *testing.T) {
	current := fixedTime
	s := New(kv.NewMemory(), testSeeds(), WithClock(func() time.Time { return current }))
	require.NoError(t, s.Load(context.Background()))
	ctx := context.Background()

	_, err := s.AddWater(ctx, 6)
	require.NoError(t, err)

	// Next day: the counter starts over, meals are kept.
	_, err = s.LogMeal(ctx, MealInput{Name: "Oatmeal", Calories: 350})
	require.NoError(t, err)

	current = current.Add(24 * time.Hour)

	n, err := s.AddWater(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n.WaterIntake)
	assert.Equal(t, "2024-06-11", n.Date)
	assert.Len(t, n.MealLog, 1)
}

func TestStore_LogMeal(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	entry, err := s.LogMeal(ctx, MealInput{Name: "Oatmeal", Calories: 350})
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal", entry.Name)
	assert.Equal(t, 350, entry.Calories)
	assert.Equal(t, "2024-06-10", entry.Date)

	_, err = s.LogMeal(ctx, MealInput{Name: "Chicken Salad", Calories: 520})
	require.NoError(t, err)

	n := s.Nutrition()
	require.Len(t, n.MealLog, 2)
	assert.Equal(t, "Oatmeal", n.MealLog[0].Name)
	assert.Equal(t, "Chicken Salad", n.MealLog[1].Name)
}

func TestStore_LogMeal_Validation(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.LogMeal(context.Background(), MealInput{Calories: 200})

	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Empty(t, s.Nutrition().MealLog)
}

func TestStore_LogMeal_NegativeCaloriesClamped(t *testing.T) {
	s, _ := newTestStore(t)

	entry, err := s.LogMeal(context.Background(), MealInput{Name: "Snack", Calories: -100})

	require.NoError(t, err)
	assert.Equal(t, 0, entry.Calories)
}

func TestStore_AddWater_PersistFailureRollsBack(t *testing.T) {
	s, mem := newTestStore(t)
	mem.FailSets = map[string]error{"nutrition": errors.New("write failed")}

	_, err := s.AddWater(context.Background(), 3)

	require.Error(t, err)
	assert.Equal(t, KindPersistence, KindOf(err))
	assert.Equal(t, 0, s.Nutrition().WaterIntake)
}
