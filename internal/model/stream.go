package model

import "time"

// Stream represents a top-level academic grouping (BTech, MTech, MBA, ...).
type Stream struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:120;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	Courses []Course `gorm:"foreignKey:StreamID"`
}
