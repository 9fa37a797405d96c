package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer types.
const (
	CustomerIndividual = "individual"
	CustomerCompany    = "company"
)

type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"index;not null"`
	CPFCNPJ      *string   `gorm:"column:cpf_cnpj;uniqueIndex"`
	Phone        *string
	Email        *string
	Address      *string
	CustomerType string `gorm:"type:varchar(20);not null;default:'individual'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
