package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. The interval [DateFrom, DateTo)
// is half-open and stored at date precision; Price is the per-night snapshot
// in cents taken when the booking was created.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_room_dates"`
	DateFrom  time.Time `gorm:"type:date;not null;index:idx_bookings_room_dates"`
	DateTo    time.Time `gorm:"type:date;not null"`
	Price     int64     `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:confirmed"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
