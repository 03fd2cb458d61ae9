package model

import "time"

// Course represents a program within a stream (CSE, Finance, ...).
type Course struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	StreamID  int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	Stream    Stream     `gorm:"constraint:OnDelete:CASCADE"`
	Semesters []Semester `gorm:"foreignKey:CourseID"`
}
