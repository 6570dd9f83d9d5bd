package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName            string     `json:"firstname" gorm:"default:''"`
	LastName             string     `json:"lastname" gorm:"default:''"`
	Username             string     `json:"username" gorm:"unique;not null"`
	Email                string     `json:"email" gorm:"unique;not null"`
	Password             string     `json:"-" gorm:"not null"`
	Role                 string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	ClientID             uint       `json:"client_id" gorm:"index"`
	ProfilePicture       string     `json:"profile_picture" gorm:"default:''"`
	Status               string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	IsEmailVerified      bool       `json:"is_email_verified" gorm:"default:false"`
	VerificationToken    string     `json:"-" gorm:"default:''"`
	ResetPasswordToken   string     `json:"-" gorm:"default:''"`
	ResetPasswordExpires *time.Time `json:"-"`
	LastLogin            time.Time  `json:"last_login" gorm:"default:NULL"`
	IsDeleted            bool       `gorm:"default:false"`
}
