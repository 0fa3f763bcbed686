// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// BookingCreatedEvent is published when a booking passes admission and is
// persisted.  It carries enough denormalized information for downstream
// consumers to log or notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID      uint64 `json:"booking_id"`
	RestaurantID   uint64 `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	TableID        uint64 `json:"table_id"`
	TableCapacity  int    `json:"table_capacity"`
	CustomerID     uint64 `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	Date           string `json:"date"`
	TimeSlot       string `json:"time_slot"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}
