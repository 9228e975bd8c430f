package store

import (
	"context"

	"fitclub/internal/metrics"
)

// AddGoal creates a goal with a fresh id, empty progress and zero percent.
func (s *Store) AddGoal(ctx context.Context, input GoalInput) (*Goal, error) {
	if input.Name == "" || input.Target == "" || input.Deadline == "" {
		return nil, invalid("Name, target and deadline are required")
	}

	s.goalsOp.Lock()
	defer s.goalsOp.Unlock()

	goal := Goal{
		ID:              s.newID(),
		Name:            input.Name,
		Target:          input.Target,
		Progress:        "",
		Deadline:        input.Deadline,
		PercentComplete: 0,
	}

	goals := s.Goals()
	goals = append(goals, goal)

	if err := s.persist(ctx, keyGoals, goals); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()

	metrics.RecordGoalUpdate("added")
	s.emit(ctx, EventGoalAdded, goal.ID, goal.Name)

	return &goal, nil
}

// UpdateGoalProgress overwrites a goal's progress text and completion
// percentage. Percent is clamped into [0,100]; reaching 100 is a derived
// display state, no separate completion transition fires here.
func (s *Store) UpdateGoalProgress(ctx context.Context, goalID, progress string, percent int) (*Goal, error) {
	s.goalsOp.Lock()
	defer s.goalsOp.Unlock()

	goals := s.Goals()
	idx := -1
	for i := range goals {
		if goals[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, notFound("Goal not found")
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	g := &goals[idx]
	g.Progress = progress
	g.PercentComplete = percent

	if err := s.persist(ctx, keyGoals, goals); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()

	metrics.RecordGoalUpdate("progress")
	s.emit(ctx, EventGoalUpdated, g.ID, g.Name)

	updated := *g
	return &updated, nil
}
