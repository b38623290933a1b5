package controllers

import (
	"errors"
	"net/http"

	"fitapi/models"
	"fitapi/services"

	"github.com/gin-gonic/gin"
)

type RoutineController struct {
	routines *services.RoutineService
}

func NewRoutineController(routines *services.RoutineService) *RoutineController {
	return &RoutineController{routines: routines}
}

type RoutineInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Workouts    []uint `json:"workouts"`
}

// WorkoutSummary is the trimmed workout shape embedded in routine responses.
type WorkoutSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RoutineResponse struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"user_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Workouts    []WorkoutSummary `json:"workouts"`
}

func toRoutineResponse(r models.Routine) RoutineResponse {
	workouts := make([]WorkoutSummary, 0, len(r.Workouts))
	for _, w := range r.Workouts {
		workouts = append(workouts, WorkoutSummary{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
		})
	}
	return RoutineResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Workouts:    workouts,
	}
}

func (ctl *RoutineController) GetAll(c *gin.Context) {
	routines, err := ctl.routines.ListOwned(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := make([]RoutineResponse, 0, len(routines))
	for _, r := range routines {
		out = append(out, toRoutineResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *RoutineController) Create(c *gin.Context) {
	var input RoutineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routine, err := ctl.routines.Create(currentUserID(c), input.Name, input.Description, input.Workouts)
	if err != nil {
		var refErr *services.WorkoutRefError
		if errors.As(err, &refErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": refErr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create routine: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toRoutineResponse(*routine))
}

func (ctl *RoutineController) Delete(c *gin.Context) {
	id, ok := queryID(c, "routine_id")
	if !ok {
		return
	}

	if err := ctl.routines.Delete(currentUserID(c), id); err != nil {
		if errors.Is(err, services.ErrRoutineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Routine not found or you don't have permission to delete it"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete routine: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Routine deleted successfully"})
}
