// Package seed generates sample users and courses for local development.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/syllabusapp/syllabus/internal/sec"
	"github.com/syllabusapp/syllabus/internal/storage"
	"github.com/syllabusapp/syllabus/internal/storage/db"
)

// Password is the login password for every generated user.
const Password = "syllabus"

const (
	estimatedTimeProbability   = 0.7
	materialsNeededProbability = 0.5
	minHours                   = 2
	maxExtraHours              = 38 // 2-40 hours
)

// Seed returns the generation seed from the SEED environment variable, or a
// random value if not set.
func Seed() uint64 {
	if env := os.Getenv("SEED"); env != "" {
		if seed, err := strconv.ParseUint(env, 10, 64); err == nil {
			return seed
		}
	}
	return rand.Uint64() //nolint:gosec // intentionally weak random for sample data
}

// Counts configures how much sample data to generate.
type Counts struct {
	Users   int
	Courses int
}

// Populate inserts generated users and courses into store. Every user gets
// the password [Password]; course owners are chosen at random from the
// generated users. The created users are returned so callers can report the
// login emails.
func Populate(ctx context.Context, store storage.Store, faker *gofakeit.Faker, counts Counts) ([]db.User, error) {
	// All sample users share a password, so one hash is enough. bcrypt is
	// deliberately slow.
	hash, err := sec.HashPassword(Password)
	if err != nil {
		return nil, err
	}

	users := make([]db.User, 0, counts.Users)
	for range counts.Users {
		person := faker.Person()
		user, err := store.CreateUser(ctx, db.User{
			FirstName:    person.FirstName,
			LastName:     person.LastName,
			EmailAddress: person.Contact.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			continue // collision in generated emails, skip
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create sample user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil, errors.New("no sample users were created")
	}

	for range counts.Courses {
		owner := users[faker.IntN(len(users))]
		if _, err := store.CreateCourse(ctx, db.Course{
			Title:           generateTitle(faker),
			Description:     faker.Paragraph(1, 3, 12, " "),
			EstimatedTime:   maybeEstimatedTime(faker),
			MaterialsNeeded: maybeMaterials(faker),
			UserID:          owner.ID,
		}); err != nil {
			return nil, fmt.Errorf("failed to create sample course: %w", err)
		}
	}
	return users, nil
}

var courseSubjects = []string{
	"HTML", "CSS", "JavaScript", "Go", "SQL", "REST APIs",
	"Unit Testing", "Accessibility", "Databases", "Authentication",
}

func generateTitle(faker *gofakeit.Faker) string {
	patterns := []func(*gofakeit.Faker) string{
		func(f *gofakeit.Faker) string {
			return "Learn " + courseSubjects[f.IntN(len(courseSubjects))]
		},
		func(f *gofakeit.Faker) string {
			return fmt.Sprintf("Build a %s %s", f.Adjective(), f.Noun())
		},
		func(f *gofakeit.Faker) string {
			return courseSubjects[f.IntN(len(courseSubjects))] + " Basics"
		},
	}
	return patterns[faker.IntN(len(patterns))](faker)
}

func maybeEstimatedTime(faker *gofakeit.Faker) sql.NullString {
	if faker.Float64() >= estimatedTimeProbability {
		return sql.NullString{}
	}
	hours := minHours + faker.IntN(maxExtraHours)
	return sql.NullString{
		Valid:  true,
		String: fmt.Sprintf("%d hours", hours),
	}
}

func maybeMaterials(faker *gofakeit.Faker) sql.NullString {
	if faker.Float64() >= materialsNeededProbability {
		return sql.NullString{}
	}
	return sql.NullString{
		Valid:  true,
		String: "* " + faker.Noun() + "\n* " + faker.Noun(),
	}
}
