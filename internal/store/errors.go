package store

import "errors"

// Sentinel errors recovered at the request boundary and mapped to status
// codes there.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrInvalidRole       = errors.New("role must be faculty or admin")
	ErrUserNotFound      = errors.New("user not found")
	ErrStreamNotFound    = errors.New("stream not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrSemesterNotFound  = errors.New("semester not found")
	ErrDuplicateStream   = errors.New("stream name already exists")
)
