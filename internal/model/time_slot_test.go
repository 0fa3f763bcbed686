package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotValid(t *testing.T) {
	for _, s := range TimeSlots {
		assert.True(t, s.Valid(), "slot %s should be valid", s)
	}
	assert.False(t, TimeSlot("BRUNCH_10H12H").Valid())
	assert.False(t, TimeSlot("").Valid())
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingInProgress, BookingCanceled, BookingFinished} {
		assert.True(t, s.Valid(), "status %s should be valid", s)
	}
	assert.False(t, BookingStatus("DONE").Valid())
}

func TestTableStatusValid(t *testing.T) {
	assert.True(t, TableAvailable.Valid())
	assert.True(t, TableMaintenance.Valid())
	assert.False(t, TableStatus("BROKEN").Valid())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Lunch 12:00 - 14:00", SlotLunch12H14H.DisplayName())
	assert.Equal(t, "Dinner 21:00 - 23:00", SlotDinner21H23H.DisplayName())
	assert.Equal(t, "In progress", BookingInProgress.DisplayName())
	// Unknown values fall back to their raw form.
	assert.Equal(t, "WEIRD", TimeSlot("WEIRD").DisplayName())
}
