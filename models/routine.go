package models

import (
	"gorm.io/gorm"
)

// Routine groups workouts picked by its owner. Membership lives in the
// workout_routines join table; deleting a routine never touches the workouts.
type Routine struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string
	Workouts    []Workout `gorm:"many2many:workout_routines;"`
}
