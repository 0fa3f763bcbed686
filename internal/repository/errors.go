// Package repository contains the data access layer.  Each entity has its
// own repository over a shared *sql.DB.  Sentinel error values defined
// here and next to each repository let handlers distinguish failure
// scenarios: a missing row maps to HTTP 404 while a violated uniqueness
// constraint maps to HTTP 409.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate is returned when an insert or update violates a declared
// uniqueness constraint, such as two bookings for the same table, date
// and time slot, or two customers sharing a phone number.  Handlers
// should translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate entry")

// IsDuplicateEntry reports whether err is a MySQL duplicate-key error
// (error number 1062) or the ErrDuplicate sentinel.  The driver error is
// checked directly so callers do not have to match on message text.
func IsDuplicateEntry(err error) bool {
	if errors.Is(err, ErrDuplicate) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
