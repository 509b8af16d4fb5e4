// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a farm operator account.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	FarmName           string
	EmailNotifications bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash, farmName string) *User {
	now := time.Now().UTC()

	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		FarmName:           farmName,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
