package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel mirrors the 'rooms' table. Price is stored in cents.
type RoomModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HotelID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Bookings []BookingModel `gorm:"foreignKey:RoomID"`
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}
