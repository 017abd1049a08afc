package model

import (
	"time"

	"github.com/google/uuid"
)

// LodgingModel mirrors the 'lodgings' table.
type LodgingModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Description    string    `gorm:"type:text"`
	Address        string    `gorm:"type:varchar(255);not null"`
	City           string    `gorm:"type:varchar(100);not null;index"`
	Country        string    `gorm:"type:varchar(100);not null;index"`
	Price          float64   `gorm:"type:numeric(10,2);not null"`
	StarRating     int       `gorm:"type:smallint;not null"`
	CustomerRating float64   `gorm:"type:numeric(3,1);not null"`
	Category       string    `gorm:"type:varchar(30);not null"`
	AvailableFrom  time.Time `gorm:"not null"`
	AvailableTo    time.Time `gorm:"not null"`
	MaxOccupancy   int       `gorm:"not null"`
	CheckInTime    string    `gorm:"type:varchar(5);not null"`
	CheckOutTime   string    `gorm:"type:varchar(5);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LodgingModel) TableName() string {
	return "lodgings"
}
