// Package store owns the user's fitness-tracking state for the lifetime of
// the app session: the class schedule, workout history, goals and nutrition
// log. Every mutation runs validate -> stage -> persist -> commit, so the
// readable state never drifts from what the key-value store holds.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fitclub/internal/kv"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"

	"github.com/google/uuid"
)

const (
	keyClasses   = "classes"
	keyWorkouts  = "workouts"
	keyGoals     = "goals"
	keyNutrition = "nutrition"

	dateLayout = "2006-01-02"
)

type Store struct {
	kv       kv.Store
	seeds    Seeds
	notifier Notifier
	now      func() time.Time
	newID    func() string

	// One mutex per collection serializes read-modify-persist, so two
	// mutations on the same collection can never interleave. Independent
	// collections proceed in parallel.
	classesOp   sync.Mutex
	workoutsOp  sync.Mutex
	goalsOp     sync.Mutex
	nutritionOp sync.Mutex

	// mu guards the committed state below. Writers hold the collection
	// mutex as well; snapshot reads take only mu.
	mu        sync.RWMutex
	ready     bool
	classes   []ClassSession
	catalog   []WorkoutTemplate
	history   []WorkoutLogEntry
	goals     []Goal
	nutrition NutritionState
}

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock overrides the time source, used by tests and date-rollover checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func New(store kv.Store, seeds Seeds, opts ...Option) *Store {
	s := &Store{
		kv:    store,
		seeds: seeds,
		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ready reports whether Load has completed. Consumers must not read
// collections before the store is ready.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Store) Classes() []ClassSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ClassSession, len(s.classes))
	copy(out, s.classes)
	return out
}

func (s *Store) Class(id string) (ClassSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.classes {
		if c.ID == id {
			return c, true
		}
	}
	return ClassSession{}, false
}

func (s *Store) Catalog() []WorkoutTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]WorkoutTemplate, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Store) WorkoutHistory() []WorkoutLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]WorkoutLogEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Store) Goals() []Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) Nutrition() NutritionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.nutrition
	n.MealLog = make([]MealEntry, len(s.nutrition.MealLog))
	copy(n.MealLog, s.nutrition.MealLog)
	return n
}

// persist writes the staged collection value. The caller commits to readable
// state only after persist succeeds; on failure the staged value is simply
// discarded, which is the rollback.
func (s *Store) persist(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		metrics.RecordPersistFailure(key)
		return persistence(err)
	}

	if err := s.kv.Set(ctx, key, data); err != nil {
		metrics.RecordPersistFailure(key)
		logger.Error("Failed to persist collection", "collection", key, "error", err)
		return persistence(err)
	}

	return nil
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}
