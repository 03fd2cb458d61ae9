package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Credential operations.
	FindUserByUsernameAndRole(ctx context.Context, username string, role model.Role) (*model.User, error)
	CreateUser(ctx context.Context, username string, role model.Role, password string) (*model.User, error)
	ResetPassword(ctx context.Context, username, newPassword string) error

	// Catalog reads.
	ListStreams(ctx context.Context) ([]model.Stream, error)
	ListCourses(ctx context.Context, streamID int64) ([]model.Course, error)
	ListSemesters(ctx context.Context, courseID int64) ([]model.Semester, error)
	GetSemester(ctx context.Context, id int64) (*model.Semester, error)

	// Catalog writes (admin only, enforced at the route guard).
	CreateStream(ctx context.Context, name string) (*model.Stream, error)
	CreateCourse(ctx context.Context, streamID int64, name string) (*model.Course, error)
	CreateSemester(ctx context.Context, courseID int64, number, availableSeats int) (*model.Semester, error)
	DeleteStream(ctx context.Context, id int64) error
	DeleteCourse(ctx context.Context, id int64) error

	// UpdateSeats overwrites a semester's seat counter in a single commit.
	// The returned flag reports whether availability crossed from zero to a
	// positive count, which is when subscribers get notified.
	UpdateSeats(ctx context.Context, semesterID int64, count int) (*model.Semester, bool, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// --- Credential operations ---

func (s *gormStore) FindUserByUsernameAndRole(ctx context.Context, username string, role model.Role) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(ctx context.Context, username string, role model.Role, password string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{Username: username, Role: role, PasswordHash: hash}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUsername
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return &user, nil
}

func (s *gormStore) ResetPassword(ctx context.Context, username, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Update("password_hash", hash)
	if result.Error != nil {
		return fmt.Errorf("failed to reset password for %q: %w", username, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// --- Catalog reads ---

func (s *gormStore) ListStreams(ctx context.Context) ([]model.Stream, error) {
	var streams []model.Stream
	if err := s.db.WithContext(ctx).Order("id").Find(&streams).Error; err != nil {
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	return streams, nil
}

func (s *gormStore) ListCourses(ctx context.Context, streamID int64) ([]model.Course, error) {
	var courses []model.Course
	if err := s.db.WithContext(ctx).Where("stream_id = ?", streamID).Order("id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses for stream %d: %w", streamID, err)
	}
	return courses, nil
}

func (s *gormStore) ListSemesters(ctx context.Context, courseID int64) ([]model.Semester, error) {
	var semesters []model.Semester
	if err := s.db.WithContext(ctx).Where("course_id = ?", courseID).Order("number").Find(&semesters).Error; err != nil {
		return nil, fmt.Errorf("failed to list semesters for course %d: %w", courseID, err)
	}
	return semesters, nil
}

func (s *gormStore) GetSemester(ctx context.Context, id int64) (*model.Semester, error) {
	var sem model.Semester
	err := s.db.WithContext(ctx).First(&sem, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSemesterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load semester %d: %w", id, err)
	}
	return &sem, nil
}

// --- Catalog writes ---

func (s *gormStore) CreateStream(ctx context.Context, name string) (*model.Stream, error) {
	stream := model.Stream{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Stream{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateStream
		}
		return tx.Create(&stream).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateStream) {
			return nil, ErrDuplicateStream
		}
		return nil, fmt.Errorf("failed to create stream %q: %w", name, err)
	}
	return &stream, nil
}

func (s *gormStore) CreateCourse(ctx context.Context, streamID int64, name string) (*model.Course, error) {
	course := model.Course{Name: name, StreamID: streamID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stream model.Stream
		if err := tx.First(&stream, streamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStreamNotFound
			}
			return err
		}
		return tx.Create(&course).Error
	})
	if err != nil {
		if errors.Is(err, ErrStreamNotFound) {
			return nil, ErrStreamNotFound
		}
		return nil, fmt.Errorf("failed to create course %q: %w", name, err)
	}
	return &course, nil
}

func (s *gormStore) CreateSemester(ctx context.Context, courseID int64, number, availableSeats int) (*model.Semester, error) {
	sem := model.Semester{Number: number, AvailableSeats: availableSeats, CourseID: courseID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
		return tx.Create(&sem).Error
	})
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to create semester %d for course %d: %w", number, courseID, err)
	}
	return &sem, nil
}

// DeleteStream removes a stream together with all of its courses and their
// semesters. The cascade is an explicit routine so it does not depend on the
// backing database honoring referential constraints.
func (s *gormStore) DeleteStream(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stream model.Stream
		if err := tx.First(&stream, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStreamNotFound
			}
			return err
		}

		courseIDs := tx.Model(&model.Course{}).Select("id").Where("stream_id = ?", id)
		if err := tx.Where("course_id IN (?)", courseIDs).Delete(&model.Semester{}).Error; err != nil {
			return fmt.Errorf("failed to delete semesters of stream %d: %w", id, err)
		}
		if err := tx.Where("stream_id = ?", id).Delete(&model.Course{}).Error; err != nil {
			return fmt.Errorf("failed to delete courses of stream %d: %w", id, err)
		}
		return tx.Delete(&stream).Error
	})
}

// DeleteCourse removes a course together with all of its semesters.
func (s *gormStore) DeleteCourse(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		if err := tx.Where("course_id = ?", id).Delete(&model.Semester{}).Error; err != nil {
			return fmt.Errorf("failed to delete semesters of course %d: %w", id, err)
		}
		return tx.Delete(&course).Error
	})
}

// --- Seat update transaction ---

// UpdateSeats loads the semester and overwrites its seat counter in one
// commit. Concurrent updates to the same semester are last-write-wins; there
// is no conflict detection.
func (s *gormStore) UpdateSeats(ctx context.Context, semesterID int64, count int) (*model.Semester, bool, error) {
	var sem model.Semester
	var opened bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sem, semesterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSemesterNotFound
			}
			return err
		}

		opened = sem.AvailableSeats == 0 && count > 0

		if err := tx.Model(&model.Semester{}).
			Where("id = ?", sem.ID).
			Update("available_seats", count).Error; err != nil {
			return fmt.Errorf("failed to update seats for semester %d: %w", semesterID, err)
		}
		sem.AvailableSeats = count
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &sem, opened, nil
}
