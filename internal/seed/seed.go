package seed

import (
	"context"
	"fmt"
	"log"

	"seatportal-backend/internal/model"
	"seatportal-backend/internal/store"
)

// Run populates default users and demo catalog data. It is an explicit
// startup step executed once before the server begins accepting traffic,
// and is a no-op when data already exists.
func Run(ctx context.Context, s store.Store) error {
	if err := seedUsers(ctx, s); err != nil {
		return err
	}
	return seedCatalog(ctx, s)
}

func seedUsers(ctx context.Context, s store.Store) error {
	var count int64
	if err := s.DB().WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default users...")
	if _, err := s.CreateUser(ctx, "admin", model.RoleAdmin, "admin123"); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if _, err := s.CreateUser(ctx, "faculty", model.RoleFaculty, "faculty123"); err != nil {
		return fmt.Errorf("failed to seed faculty user: %w", err)
	}
	return nil
}

// catalogFixture describes one stream with its courses, semester count, and
// per-semester seat capacity.
type catalogFixture struct {
	stream    string
	courses   []string
	semesters int
	seats     int
}

func seedCatalog(ctx context.Context, s store.Store) error {
	var count int64
	if err := s.DB().WithContext(ctx).Model(&model.Stream{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count streams: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo catalog...")
	fixtures := []catalogFixture{
		{stream: "BTech", courses: []string{"CSE", "ECE", "Mechanical", "Civil"}, semesters: 8, seats: 60},
		{stream: "MTech", courses: []string{"AI & DS", "VLSI"}, semesters: 4, seats: 30},
		{stream: "MBA", courses: []string{"Finance", "Marketing", "HR"}, semesters: 4, seats: 40},
	}

	for _, fix := range fixtures {
		stream, err := s.CreateStream(ctx, fix.stream)
		if err != nil {
			return fmt.Errorf("failed to seed stream %q: %w", fix.stream, err)
		}
		for _, courseName := range fix.courses {
			course, err := s.CreateCourse(ctx, stream.ID, courseName)
			if err != nil {
				return fmt.Errorf("failed to seed course %q: %w", courseName, err)
			}
			for n := 1; n <= fix.semesters; n++ {
				if _, err := s.CreateSemester(ctx, course.ID, n, fix.seats); err != nil {
					return fmt.Errorf("failed to seed semester %d of %q: %w", n, courseName, err)
				}
			}
		}
	}
	return nil
}
