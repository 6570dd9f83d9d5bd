package models

import "gorm.io/gorm"

// Class groups a teacher with a roster of students inside one tenant
type Class struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	TeacherID uint   `json:"teacher_id" gorm:"index;not null"`
	ClientID  uint   `json:"client_id" gorm:"index;not null"`
	Students  []User `json:"students" gorm:"many2many:class_students;"`
	IsDeleted bool   `gorm:"default:false"`
}
