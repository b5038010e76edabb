package models

import (
	"time"
)

// Booking is one immutable reservation record. Rows are append-only: nothing
// in the application updates or deletes them once committed.
//
// CustomerID is nullable on purpose — rows created before the customer table
// was introduced have no link, and that is tolerated everywhere.
type Booking struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	CustomerID *uint `gorm:"index" json:"customerId,omitempty"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:50;not null" json:"phone"`
	Date     string `gorm:"size:20;not null" json:"date"`
	Time     string `gorm:"size:20;not null" json:"time"`
	Duration string `gorm:"size:50;not null" json:"duration"`

	CreatedAt time.Time `json:"createdAt"`
}
