package model

import (
	"time"

	"github.com/google/uuid"
)

// HotelModel mirrors the 'hotels' table.
type HotelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Location  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Rooms []RoomModel `gorm:"foreignKey:HotelID"`
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}
