package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username       string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string     `gorm:"type:varchar(255);not null"`
	FirstName      string     `gorm:"type:varchar(100);not null"`
	LastName       string     `gorm:"type:varchar(100);not null"`
	DateOfBirth    *time.Time `gorm:"type:date"`
	PassportNumber *string    `gorm:"type:varchar(50)"`
	PassportExpiry *time.Time `gorm:"type:date;index"`
	Phone          *string    `gorm:"type:varchar(20)"`
	Country        string     `gorm:"type:varchar(100);not null;default:'';index"`
	Role           string     `gorm:"type:varchar(20);not null;default:CUSTOMER"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
