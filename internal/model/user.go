package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores system users. Role values are the closed set defined in
// internal/authz; CompanyID scopes non-admin users to one tenant.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Company *Company `gorm:"foreignKey:CompanyID"`
}

// APIKey authenticates integration clients via the x-api-key header.
type APIKey struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key        string    `gorm:"uniqueIndex;not null"`
	Name       string    `gorm:"not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	ExpiresAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
}
