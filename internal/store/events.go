package store

import (
	"context"
	"time"
)

type EventType string

const (
	EventClassBooked    EventType = "class_booked"
	EventClassCancelled EventType = "class_cancelled"
	EventWorkoutLogged  EventType = "workout_logged"
	EventGoalAdded      EventType = "goal_added"
	EventGoalUpdated    EventType = "goal_updated"
	EventWaterUpdated   EventType = "water_updated"
	EventMealLogged     EventType = "meal_logged"
)

// Event describes a successful mutation. Delivery is best-effort: a notifier
// failure never fails the operation that produced the event.
type Event struct {
	Type       EventType `json:"type"`
	EntityID   string    `json:"entity_id,omitempty"`
	EntityName string    `json:"entity_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

func (s *Store) emit(ctx context.Context, evType EventType, id, name string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, Event{
		Type:       evType,
		EntityID:   id,
		EntityName: name,
		OccurredAt: s.now(),
	})
}
