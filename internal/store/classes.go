package store

import (
	"context"

	"fitclub/internal/metrics"
)

// BookClass reserves a seat in the given class for the current user. A second
// call on an already-booked class is rejected rather than double-counted.
func (s *Store) BookClass(ctx context.Context, classID string) (*ClassSession, error) {
	s.classesOp.Lock()
	defer s.classesOp.Unlock()

	classes := s.Classes()
	idx := findClass(classes, classID)
	if idx < 0 {
		metrics.RecordBooking("rejected")
		return nil, notFound("Class not found")
	}

	c := &classes[idx]
	if c.Enrolled >= c.Capacity {
		metrics.RecordBooking("rejected")
		return nil, conflict("Class is full")
	}
	if c.Booked {
		metrics.RecordBooking("rejected")
		return nil, conflict("Already booked")
	}

	c.Enrolled++
	c.Booked = true

	if err := s.persist(ctx, keyClasses, classes); err != nil {
		metrics.RecordBooking("rejected")
		return nil, err
	}

	s.mu.Lock()
	s.classes = classes
	s.mu.Unlock()

	metrics.RecordBooking("booked")
	s.emit(ctx, EventClassBooked, c.ID, c.Name)

	booked := *c
	return &booked, nil
}

// CancelClass releases the user's seat in the given class.
func (s *Store) CancelClass(ctx context.Context, classID string) (*ClassSession, error) {
	s.classesOp.Lock()
	defer s.classesOp.Unlock()

	classes := s.Classes()
	idx := findClass(classes, classID)
	if idx < 0 {
		return nil, notFound("Class not found")
	}

	c := &classes[idx]
	if !c.Booked {
		return nil, conflict("Not booked")
	}

	if c.Enrolled > 0 {
		c.Enrolled--
	}
	c.Booked = false

	if err := s.persist(ctx, keyClasses, classes); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.classes = classes
	s.mu.Unlock()

	metrics.RecordBookingCancellation()
	s.emit(ctx, EventClassCancelled, c.ID, c.Name)

	cancelled := *c
	return &cancelled, nil
}

func findClass(classes []ClassSession, id string) int {
	for i := range classes {
		if classes[i].ID == id {
			return i
		}
	}
	return -1
}
