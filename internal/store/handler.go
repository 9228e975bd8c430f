package store

import (
	"net/http"

	"fitclub/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(s *Store) *Handler {
	return &Handler{store: s}
}

// statusFor maps the failure taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindPersistence:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
}

// requireReady rejects reads and mutations until Load has completed.
func (h *Handler) requireReady(c *gin.Context) bool {
	if !h.store.Ready() {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Store is still loading"})
		return false
	}
	return true
}

// ListClasses godoc
// @Summary      List class schedule
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   ClassSession
// @Failure      503  {object}  api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Classes())
}

// GetClass godoc
// @Summary      Class details
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Class ID"
// @Success      200      {object}  ClassSession
// @Failure      404      {object}  api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	class, ok := h.store.Class(c.Param("classID"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// BookClass godoc
// @Summary      Book a class
// @Description  Reserves a seat in the class for the current user.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Class ID"
// @Success      200      {object}  ClassSession
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      503      {object}  api.ErrorResponse
// @Router       /classes/{classID}/book [post]
func (h *Handler) BookClass(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	class, err := h.store.BookClass(c.Request.Context(), c.Param("classID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// CancelClass godoc
// @Summary      Cancel a class booking
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Class ID"
// @Success      200      {object}  ClassSession
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /classes/{classID}/cancel [post]
func (h *Handler) CancelClass(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	class, err := h.store.CancelClass(c.Request.Context(), c.Param("classID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListCatalog godoc
// @Summary      Workout catalog
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  WorkoutTemplate
// @Router       /workouts [get]
func (h *Handler) ListCatalog(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Catalog())
}

// ListProgress godoc
// @Summary      Workout history
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  WorkoutLogEntry
// @Router       /progress [get]
func (h *Handler) ListProgress(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.WorkoutHistory())
}

// LogWorkout godoc
// @Summary      Log a workout
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      WorkoutInput  true  "Workout entry"
// @Success      201      {object}  WorkoutLogEntry
// @Failure      400      {object}  api.ErrorResponse
// @Router       /workouts [post]
func (h *Handler) LogWorkout(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BindError(c, err)
		return
	}

	entry, err := h.store.LogWorkout(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListGoals godoc
// @Summary      List goals
// @Tags         goals
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Goal
// @Router       /goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Goals())
}

// AddGoal godoc
// @Summary      Add a goal
// @Tags         goals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      GoalInput  true  "Goal"
// @Success      201      {object}  Goal
// @Failure      400      {object}  api.ErrorResponse
// @Router       /goals [post]
func (h *Handler) AddGoal(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BindError(c, err)
		return
	}

	goal, err := h.store.AddGoal(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

type goalProgressRequest struct {
	Progress        string `json:"progress" binding:"required"`
	PercentComplete int    `json:"percentComplete"`
}

// UpdateGoalProgress godoc
// @Summary      Update goal progress
// @Tags         goals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        goalID   path      string               true  "Goal ID"
// @Param        request  body      goalProgressRequest  true  "Progress"
// @Success      200      {object}  Goal
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /goals/{goalID}/progress [post]
func (h *Handler) UpdateGoalProgress(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	var req goalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	goal, err := h.store.UpdateGoalProgress(c.Request.Context(), c.Param("goalID"), req.Progress, req.PercentComplete)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetNutrition godoc
// @Summary      Today's nutrition state
// @Tags         nutrition
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  NutritionState
// @Router       /nutrition [get]
func (h *Handler) GetNutrition(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Nutrition())
}

type waterRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AddWater godoc
// @Summary      Adjust water intake
// @Tags         nutrition
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      waterRequest  true  "Glasses delta"
// @Success      200      {object}  NutritionState
// @Failure      400      {object}  api.ErrorResponse
// @Router       /nutrition/water [post]
func (h *Handler) AddWater(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	state, err := h.store.AddWater(c.Request.Context(), req.Delta)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// LogMeal godoc
// @Summary      Log a meal
// @Tags         nutrition
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      MealInput  true  "Meal"
// @Success      201      {object}  MealEntry
// @Failure      400      {object}  api.ErrorResponse
// @Router       /nutrition/meals [post]
func (h *Handler) LogMeal(c *gin.Context) {
	if !h.requireReady(c) {
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BindError(c, err)
		return
	}

	entry, err := h.store.LogMeal(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
