package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizResult is one student's single, immutable scored submission against one
// publication. The compound unique index makes the at-most-one-attempt rule a
// storage guarantee instead of an application-level race.
type QuizResult struct {
	gorm.Model
	PublishedQuizID uint                        `json:"published_quiz_id" gorm:"uniqueIndex:idx_student_publication;not null"`
	StudentID       uint                        `json:"student_id" gorm:"uniqueIndex:idx_student_publication;not null"`
	QuizID          uint                        `json:"quiz_id" gorm:"index;not null"`
	ClientID        uint                        `json:"client_id" gorm:"index;not null"`
	Answers         datatypes.JSONSlice[string] `json:"answers"`
	Score           int                         `json:"score"`
	PercentageScore float64                     `json:"percentage_score"`
	CompletedAt     time.Time                   `json:"completed_at"`
}
