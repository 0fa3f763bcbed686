package model

// TimeSlot is a fixed service window a booking occupies.  The set of slots
// is closed: two lunch seatings and two dinner seatings per day.  A table
// can hold at most one booking per (date, slot) pair.
type TimeSlot string

const (
	SlotLunch12H14H  TimeSlot = "LUNCH_12H14H"
	SlotLunch14H16H  TimeSlot = "LUNCH_14H16H"
	SlotDinner19H21H TimeSlot = "DINNER_19H21H"
	SlotDinner21H23H TimeSlot = "DINNER_21H23H"
)

// TimeSlots lists every service window in serving order.
var TimeSlots = []TimeSlot{
	SlotLunch12H14H,
	SlotLunch14H16H,
	SlotDinner19H21H,
	SlotDinner21H23H,
}

// Valid reports whether s is one of the known service windows.
func (s TimeSlot) Valid() bool {
	switch s {
	case SlotLunch12H14H, SlotLunch14H16H, SlotDinner19H21H, SlotDinner21H23H:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the slot.
func (s TimeSlot) DisplayName() string {
	switch s {
	case SlotLunch12H14H:
		return "Lunch 12:00 - 14:00"
	case SlotLunch14H16H:
		return "Lunch 14:00 - 16:00"
	case SlotDinner19H21H:
		return "Dinner 19:00 - 21:00"
	case SlotDinner21H23H:
		return "Dinner 21:00 - 23:00"
	}
	return string(s)
}
