package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is one multiple-choice question of a quiz. CorrectAnswer is the
// zero-based index into Answers.
type Question struct {
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Quiz is an authored set of multiple-choice questions, owned by the teacher
// who created it and scoped to that teacher's tenant
type Quiz struct {
	gorm.Model
	Title     string                        `json:"title" gorm:"not null"`
	Content   string                        `json:"content" gorm:"type:text"` // source text the questions were generated from
	Questions datatypes.JSONSlice[Question] `json:"questions"`
	CreatedBy uint                          `json:"created_by" gorm:"index;not null"`
	ClientID  uint                          `json:"client_id" gorm:"index;not null"`
	IsDeleted bool                          `gorm:"default:false"`
}
