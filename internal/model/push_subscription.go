package model

import "time"

// PushSubscription holds a browser push subscription for seat-availability
// alerts.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Semesters []*Semester `gorm:"many2many:subscription_semester_mapping;"`
}
