package models

import (
	"gorm.io/gorm"
)

// Workout is a single exercise entry owned by one user. It can belong to any
// number of routines through the workout_routines join table.
type Workout struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string
	Routines    []Routine `gorm:"many2many:workout_routines;"`
}
