package model

// TableStatus describes whether a dining table can normally be used for
// service.  A table under maintenance is still visible through the API.
type TableStatus string

const (
	TableAvailable   TableStatus = "AVAILABLE"
	TableMaintenance TableStatus = "MAINTENANCE"
)

// Valid reports whether s is one of the known table statuses.
func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableMaintenance:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the status.
func (s TableStatus) DisplayName() string {
	switch s {
	case TableAvailable:
		return "Available"
	case TableMaintenance:
		return "Under maintenance"
	}
	return string(s)
}

// DiningTable is a physical table inside a restaurant.  Capacity is
// bounded by configured limits enforced in the service layer, not here.
//
// Fields:
//  ID           – primary key identifier.
//  Capacity     – number of seats at the table.
//  Status       – AVAILABLE or MAINTENANCE.
//  RestaurantID – owning restaurant reference.
//  Restaurant   – hydrated restaurant, populated by joined queries.
type DiningTable struct {
	ID           uint64      `json:"id"`                   // dining_tables.id
	Capacity     int         `json:"capacity"`             // dining_tables.capacity
	Status       TableStatus `json:"status"`               // dining_tables.status
	RestaurantID uint64      `json:"-"`                    // dining_tables.restaurant_id
	Restaurant   *Restaurant `json:"restaurant,omitempty"` // joined restaurants row
}
