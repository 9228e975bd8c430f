package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"fitclub/internal/kv"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"
)

// Load reads every persisted collection in parallel and transitions the store
// to ready. A missing or unparseable blob falls back to that collection's
// seed without blocking the others.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()

	var (
		wg        sync.WaitGroup
		classes   []ClassSession
		history   []WorkoutLogEntry
		goals     []Goal
		nutrition NutritionState
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		classes = loadBlob(ctx, s.kv, keyClasses, s.seeds.Classes)
	}()
	go func() {
		defer wg.Done()
		history = loadBlob(ctx, s.kv, keyWorkouts, s.seeds.History)
	}()
	go func() {
		defer wg.Done()
		goals = loadBlob(ctx, s.kv, keyGoals, s.seeds.Goals)
	}()
	go func() {
		defer wg.Done()
		nutrition = loadBlob(ctx, s.kv, keyNutrition, s.seeds.Nutrition)
	}()
	wg.Wait()

	// Water intake is a per-day counter: crossing a date boundary since the
	// last persisted state resets it. Meal entries keep their own dates and
	// are never dropped.
	if today := s.today(); nutrition.Date != today {
		nutrition.Date = today
		nutrition.WaterIntake = 0
	}

	s.mu.Lock()
	s.classes = classes
	s.catalog = s.seeds.Catalog
	s.history = history
	s.goals = goals
	s.nutrition = nutrition
	s.ready = true
	s.mu.Unlock()

	metrics.StoreLoadDuration.Observe(time.Since(start).Seconds())
	logger.Info("User data store ready",
		"classes", len(classes),
		"workouts", len(history),
		"goals", len(goals),
	)

	return nil
}

func loadBlob[T any](ctx context.Context, store kv.Store, key string, seed T) T {
	data, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.Error("Failed to read collection, using seed", "collection", key, "error", err)
		}
		metrics.RecordSeedFallback(key)
		return seed
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Error("Corrupt collection blob, using seed", "collection", key, "error", err)
		metrics.RecordSeedFallback(key)
		return seed
	}

	return out
}
