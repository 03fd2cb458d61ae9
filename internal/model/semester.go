package model

// Semester represents a numbered term within a course. AvailableSeats is the
// one mutable counter in the schema; it changes only through the seat update
// transaction in the store.
type Semester struct {
	ID             int64 `gorm:"primaryKey"`
	Number         int   `gorm:"not null"`
	AvailableSeats int   `gorm:"not null;default:0"`
	CourseID       int64 `gorm:"index;not null"`

	// Associations
	Course Course `gorm:"constraint:OnDelete:CASCADE"`
}
