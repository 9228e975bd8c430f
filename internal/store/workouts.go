package store

import (
	"context"

	"fitclub/internal/metrics"
)

// LogWorkout appends an entry to the workout history. Entries are immutable
// once appended; there is no edit or delete path.
func (s *Store) LogWorkout(ctx context.Context, input WorkoutInput) (*WorkoutLogEntry, error) {
	if input.Workout == "" {
		return nil, invalid("Workout name is required")
	}
	if input.Duration <= 0 {
		return nil, invalid("Duration must be a positive number")
	}

	s.workoutsOp.Lock()
	defer s.workoutsOp.Unlock()

	entry := WorkoutLogEntry{
		Date:           input.Date,
		Workout:        input.Workout,
		Duration:       input.Duration,
		CaloriesBurned: input.CaloriesBurned,
	}
	if entry.Date == "" {
		entry.Date = s.today()
	}
	if entry.CaloriesBurned < 0 {
		entry.CaloriesBurned = 0
	}

	history := s.WorkoutHistory()
	history = append(history, entry)

	if err := s.persist(ctx, keyWorkouts, history); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.history = history
	s.mu.Unlock()

	metrics.RecordWorkoutLogged()
	s.emit(ctx, EventWorkoutLogged, "", entry.Workout)

	return &entry, nil
}
