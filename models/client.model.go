package models

import "gorm.io/gorm"

// Client is a tenant: a school or district owning its own users, classes and quizzes
type Client struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	IsDeleted    bool   `gorm:"default:false"`
}
