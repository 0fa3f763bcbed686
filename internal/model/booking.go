package model

// BookingStatus is the lifecycle label attached to a booking.  It is a
// closed enumeration; no transition rules are enforced between values, the
// status is simply replaced on update.
type BookingStatus string

const (
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCanceled   BookingStatus = "CANCELED"
	BookingFinished   BookingStatus = "FINISH"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingInProgress, BookingCanceled, BookingFinished:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the status.
func (s BookingStatus) DisplayName() string {
	switch s {
	case BookingInProgress:
		return "In progress"
	case BookingCanceled:
		return "Canceled"
	case BookingFinished:
		return "Finished"
	}
	return string(s)
}

// Booking reserves one dining table for one customer on a given date and
// service window.  The triple (table, date, slot) is unique across all
// bookings; the database carries the constraint and the service layer
// pre-checks it before writing.
//
// Fields:
//  ID            – primary key identifier.
//  DiningTableID – reserved table reference.
//  CustomerID    – customer the booking belongs to.
//  TimeSlot      – service window occupied.
//  Date          – calendar date in YYYY-MM-DD form.
//  Status        – lifecycle label (IN_PROGRESS, CANCELED, FINISH).
//  Table         – hydrated dining table, populated by joined queries.
//  Customer      – hydrated customer, populated by joined queries.
type Booking struct {
	ID            uint64        `json:"id"`                 // bookings.id
	DiningTableID uint64        `json:"-"`                  // bookings.dining_table_id
	CustomerID    uint64        `json:"-"`                  // bookings.customer_id
	TimeSlot      TimeSlot      `json:"time_slot"`          // bookings.time_slot
	Date          string        `json:"date"`               // bookings.date (DATE column)
	Status        BookingStatus `json:"status"`             // bookings.status
	Table         *DiningTable  `json:"table,omitempty"`    // joined dining_tables row
	Customer      *Customer     `json:"customer,omitempty"` // joined customers row
}
