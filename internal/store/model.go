package store

// ClassSession is one entry in the club's weekly class schedule. Booked marks
// whether the current user holds one of the Enrolled seats.
type ClassSession struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Capacity    int    `json:"capacity"`
	Enrolled    int    `json:"enrolled"`
	Instructor  string `json:"instructor"`
	Description string `json:"description"`
	Booked      bool   `json:"isBooked"`
}

// WorkoutTemplate is a catalog entry the user can pick from when logging a
// workout. The catalog is seeded and read-only.
type WorkoutTemplate struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Duration int    `json:"duration"`
	Level    string `json:"level"`
}

// WorkoutLogEntry is immutable once appended. History order is insertion
// order, which may differ from the Date field.
type WorkoutLogEntry struct {
	Date           string `json:"date"`
	Workout        string `json:"workout"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

type Goal struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Target          string `json:"target"`
	Progress        string `json:"progress"`
	Deadline        string `json:"deadline"`
	PercentComplete int    `json:"percentComplete"`
}

type MealEntry struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// NutritionState tracks the current day's water intake and the append-only
// meal log. Date marks the day WaterIntake belongs to; a rollover resets the
// counter but never touches the meal log.
type NutritionState struct {
	Date        string      `json:"date"`
	WaterIntake int         `json:"waterIntake"`
	MealLog     []MealEntry `json:"mealLog"`
}

// Seeds holds the per-collection defaults applied when no persisted blob
// exists or the persisted blob cannot be parsed.
type Seeds struct {
	Classes   []ClassSession
	Catalog   []WorkoutTemplate
	History   []WorkoutLogEntry
	Goals     []Goal
	Nutrition NutritionState
}

// Inputs for mutation operations. Validation happens at the operation
// boundary, not in the HTTP layer.

type WorkoutInput struct {
	Workout        string `json:"workout" binding:"required"`
	Duration       int    `json:"duration" binding:"required"`
	CaloriesBurned int    `json:"caloriesBurned"`
	Date           string `json:"date"`
}

type GoalInput struct {
	Name     string `json:"name" binding:"required"`
	Target   string `json:"target" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

type MealInput struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories"`
}
