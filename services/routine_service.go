package services

import (
	"errors"
	"fmt"

	"fitapi/models"

	"gorm.io/gorm"
)

var ErrRoutineNotFound = errors.New("routine not found")

// WorkoutRefError names the workout id that made a routine create fail.
type WorkoutRefError struct {
	ID uint
}

func (e *WorkoutRefError) Error() string {
	return fmt.Sprintf("workout with ID %d not found or you don't have access to it", e.ID)
}

type RoutineService struct {
	db *gorm.DB
}

func NewRoutineService(db *gorm.DB) *RoutineService {
	return &RoutineService{db: db}
}

// ListOwned returns the user's routines with member workouts populated.
func (s *RoutineService) ListOwned(userID uint) ([]models.Routine, error) {
	var routines []models.Routine
	err := s.db.Preload("Workouts").Where("user_id = ?", userID).Find(&routines).Error
	if err != nil {
		return nil, err
	}
	return routines, nil
}

// Create checks that every referenced workout belongs to userID, then persists
// the routine and its memberships in one transaction. A missing or foreign
// workout aborts the whole create; nothing is written. Duplicate ids collapse
// on the join table's (workout_id, routine_id) key.
func (s *RoutineService) Create(userID uint, name, description string, workoutIDs []uint) (*models.Routine, error) {
	routine := models.Routine{
		UserID:      userID,
		Name:        name,
		Description: description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		members := make([]models.Workout, 0, len(workoutIDs))
		for _, id := range workoutIDs {
			var workout models.Workout
			err := tx.Where("id = ? AND user_id = ?", id, userID).First(&workout).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &WorkoutRefError{ID: id}
				}
				return err
			}
			members = append(members, workout)
		}

		routine.Workouts = members
		return tx.Create(&routine).Error
	})
	if err != nil {
		return nil, err
	}

	// Reload with memberships so the caller sees exactly what was stored.
	var created models.Routine
	if err := s.db.Preload("Workouts").First(&created, routine.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes the routine and its membership rows atomically; member
// workouts are untouched.
func (s *RoutineService) Delete(userID, routineID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var routine models.Routine
		err := tx.Where("id = ? AND user_id = ?", routineID, userID).First(&routine).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoutineNotFound
			}
			return err
		}

		if err := tx.Model(&routine).Association("Workouts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&routine).Error
	})
}
