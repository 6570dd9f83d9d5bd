package models

import (
	"time"

	"gorm.io/gorm"
)

// PublishedQuiz assigns one quiz to one class with a due date. Republishing
// the same quiz to the same class creates a second row on purpose, so a class
// can retake a quiz under a new due date.
type PublishedQuiz struct {
	gorm.Model
	QuizID    uint      `json:"quiz_id" gorm:"index;not null"`
	ClassID   uint      `json:"class_id" gorm:"index;not null"`
	DueDate   time.Time `json:"due_date" gorm:"not null"`
	TimeLimit *int      `json:"time_limit"` // minutes, optional
	CreatedBy uint      `json:"created_by" gorm:"index;not null"`
	ClientID  uint      `json:"client_id" gorm:"index;not null"`
	IsDeleted bool      `gorm:"default:false"`
}
