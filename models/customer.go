package models

import (
	"time"
)

// Customer is a unique person identified by phone number, aggregating their
// booking history. The unique index on Phone is what keeps two concurrent
// first-time submissions from creating two rows for the same person.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string    `gorm:"size:100;not null" json:"name"`
	Phone            string    `gorm:"size:50;not null;uniqueIndex" json:"phone"`
	Email            string    `gorm:"size:100" json:"email,omitempty"`
	FirstBookingDate time.Time `json:"firstBookingDate"`

	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"-"`
}
