package services

import (
	"errors"

	"fitapi/models"

	"gorm.io/gorm"
)

// ErrWorkoutNotFound covers both an absent workout and one owned by another
// user, so lookups never reveal which it was.
var ErrWorkoutNotFound = errors.New("workout not found")

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// Get returns the workout only when it belongs to userID.
func (s *WorkoutService) Get(userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (s *WorkoutService) ListOwned(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.db.Where("user_id = ?", userID).Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *WorkoutService) Create(userID uint, name, description string) (*models.Workout, error) {
	workout := models.Workout{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.db.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout and its routine memberships in one transaction.
// Routines that referenced it keep their other members.
func (s *WorkoutService) Delete(userID, workoutID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout
		err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWorkoutNotFound
			}
			return err
		}

		if err := tx.Model(&workout).Association("Routines").Clear(); err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
}
