package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeConsumer      UserType = "consumer"
	UserTypeEstablishment UserType = "establishment"
)

type User struct {
	gorm.Model
	UUID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	Email           string    `gorm:"uniqueIndex"`
	PasswordHash    string
	Name            string
	UserType        UserType
	Phone           *string
	ProfileImageURL *string
	IsVerified      bool
}
