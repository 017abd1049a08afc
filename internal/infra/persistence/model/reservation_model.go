package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table. Both references cascade on delete.
type ReservationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	LodgingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Lodging  *LodgingModel  `gorm:"foreignKey:LodgingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
