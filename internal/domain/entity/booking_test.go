package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Nights(t *testing.T) {
	booking := &Booking{DateFrom: day(1), DateTo: day(4)}

	assert.Equal(t, 3, booking.Nights())
}

func TestBooking_TotalCost(t *testing.T) {
	booking := &Booking{DateFrom: day(1), DateTo: day(4), Price: 12500}

	assert.Equal(t, int64(37500), booking.TotalCost())
}

func TestBooking_OverlapsRange(t *testing.T) {
	booking := &Booking{DateFrom: day(5), DateTo: day(10)}

	tests := []struct {
		name     string
		dateFrom time.Time
		dateTo   time.Time
		want     bool
	}{
		{"identical range", day(5), day(10), true},
		{"contained range", day(6), day(8), true},
		{"containing range", day(1), day(15), true},
		{"overlap at start", day(3), day(6), true},
		{"overlap at end", day(9), day(12), true},
		{"before", day(1), day(3), false},
		{"after", day(12), day(15), false},
		{"back to back before", day(1), day(5), false},
		{"back to back after", day(10), day(15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.OverlapsRange(tt.dateFrom, tt.dateTo))
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{DateFrom: day(5), DateTo: day(10)}

	// Check-out day equals check-in day of the next guest, so adjacent
	// bookings never conflict.
	adjacent := &Booking{DateFrom: day(10), DateTo: day(12)}
	overlapping := &Booking{DateFrom: day(9), DateTo: day(12)}

	assert.False(t, booking.Overlaps(adjacent))
	assert.False(t, adjacent.Overlaps(booking))
	assert.True(t, booking.Overlaps(overlapping))
	assert.True(t, overlapping.Overlaps(booking))
}
