package model

// Customer identifies the person a booking is made for.  The phone number
// is unique across all customers and enforced by the database; email is
// optional and therefore nullable.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – full name of the customer.
//  Email       – optional email address.
//  PhoneNumber – unique contact phone number.
type Customer struct {
	ID          uint64  `json:"id"`              // customers.id
	Name        string  `json:"name"`            // customers.name
	Email       *string `json:"email,omitempty"` // customers.email (nullable)
	PhoneNumber string  `json:"phone_number"`    // customers.phone_number (unique)
}
