package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fitapi/models"
	"fitapi/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

type WorkoutInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type WorkoutResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toWorkoutResponse(w models.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		Name:        w.Name,
		Description: w.Description,
	}
}

// currentUserID reads the identity stored by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

func queryID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func (ctl *WorkoutController) Get(c *gin.Context) {
	id, ok := queryID(c, "workout_id")
	if !ok {
		return
	}

	workout, err := ctl.workouts.Get(currentUserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponse(*workout))
}

func (ctl *WorkoutController) GetAll(c *gin.Context) {
	workouts, err := ctl.workouts.ListOwned(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := make([]WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toWorkoutResponse(w))
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *WorkoutController) Create(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := ctl.workouts.Create(currentUserID(c), input.Name, input.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create workout: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toWorkoutResponse(*workout))
}

func (ctl *WorkoutController) Delete(c *gin.Context) {
	id, ok := queryID(c, "workout_id")
	if !ok {
		return
	}

	if err := ctl.workouts.Delete(currentUserID(c), id); err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found or you don't have permission to delete it"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete workout: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
