package model

// Restaurant is a venue that owns one or more dining tables.  It carries
// only contact information; table layout and bookings live in their own
// tables and reference the restaurant by id.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – human-friendly name of the restaurant.
//  Address     – postal address.
//  PhoneNumber – contact phone number.
type Restaurant struct {
	ID          uint64 `json:"id"`           // restaurants.id
	Name        string `json:"name"`         // restaurants.name
	Address     string `json:"address"`      // restaurants.address
	PhoneNumber string `json:"phone_number"` // restaurants.phone_number
}
