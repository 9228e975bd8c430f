package store

import "context"

// AddWater adjusts today's water intake by delta glasses, clamped at zero.
// Crossing a date boundary since the last nutrition write resets the counter
// first.
func (s *Store) AddWater(ctx context.Context, delta int) (*NutritionState, error) {
	s.nutritionOp.Lock()
	defer s.nutritionOp.Unlock()

	n := s.Nutrition()
	s.rollover(&n)

	n.WaterIntake += delta
	if n.WaterIntake < 0 {
		n.WaterIntake = 0
	}

	if err := s.persist(ctx, keyNutrition, n); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.nutrition = n
	s.mu.Unlock()

	s.emit(ctx, EventWaterUpdated, "", "")

	return &n, nil
}

// LogMeal appends one meal entry stamped with today's date.
func (s *Store) LogMeal(ctx context.Context, input MealInput) (*MealEntry, error) {
	if input.Name == "" {
		return nil, invalid("Meal name is required")
	}

	s.nutritionOp.Lock()
	defer s.nutritionOp.Unlock()

	n := s.Nutrition()
	s.rollover(&n)

	entry := MealEntry{
		Date:     s.today(),
		Name:     input.Name,
		Calories: input.Calories,
	}
	if entry.Calories < 0 {
		entry.Calories = 0
	}

	n.MealLog = append(n.MealLog, entry)

	if err := s.persist(ctx, keyNutrition, n); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.nutrition = n
	s.mu.Unlock()

	s.emit(ctx, EventMealLogged, "", entry.Name)

	return &entry, nil
}

func (s *Store) rollover(n *NutritionState) {
	if today := s.today(); n.Date != today {
		n.Date = today
		n.WaterIntake = 0
	}
}
