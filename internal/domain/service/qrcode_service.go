package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBookingQR generates a check-in QR code for a booking
	GenerateBookingQR(bookingID uuid.UUID) ([]byte, error)

	// ParseBookingQR parses QR code data and returns the booking ID
	ParseBookingQR(qrData string) (uuid.UUID, error)
}
