package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/influxdata/influxdb/pkg/snowflake"

	"github.com/syllabusapp/syllabus/internal/config"
	"github.com/syllabusapp/syllabus/internal/storage/db"
)

// DB is a [Store] backed by a SQLite database.
type DB struct {
	ids     *snowflake.Generator
	db      *sql.DB
	queries *db.Queries
}

// NewDB initializes a DB with the given config and logger.
func NewDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	handle, err := db.Open(ctx, logger, cfg.DBFilepath)
	if err != nil {
		return nil, err
	}
	return &DB{
		ids:     snowflake.New(rand.IntN(1023)), //nolint:gosec,mnd // this isn't for crypto
		db:      handle,
		queries: db.New(handle),
	}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error {
	return d.db.Close()
}

// ListUsers satisfies the [Users] interface.
func (d *DB) ListUsers(ctx context.Context, afterEmail string, limit int32) ([]db.User, error) {
	return d.queries.GetUsers(ctx, db.GetUsersParams{
		AfterEmail: afterEmail,
		Limit:      int64(limit),
	})
}

// GetUser satisfies the [Users] interface.
func (d *DB) GetUser(ctx context.Context, userID uint64) (db.User, error) {
	user, err := d.queries.GetUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

// GetUserByEmail satisfies the [Users] interface.
func (d *DB) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	user, err := d.queries.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

// CreateUser satisfies the [Users] interface.
func (d *DB) CreateUser(ctx context.Context, user db.User) (db.User, error) {
	if user.ID == 0 {
		user.ID = d.ids.Next()
	}
	created, err := d.queries.CreateUser(ctx, db.CreateUserParams(user))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// The conflict clause swallowed the insert: email already in use.
		return created, ErrAlreadyExists
	case isUniqueViolation(err):
		return created, ErrAlreadyExists
	default:
		return created, err
	}
}

// DeleteUser satisfies the [Users] interface.
func (d *DB) DeleteUser(ctx context.Context, userID uint64) error {
	return d.queries.DeleteUser(ctx, userID)
}

// ListCourses satisfies the [Courses] interface.
func (d *DB) ListCourses(ctx context.Context) ([]db.GetCoursesRow, error) {
	return d.queries.GetCourses(ctx)
}

// GetCourse satisfies the [Courses] interface.
func (d *DB) GetCourse(ctx context.Context, courseID uint64) (db.Course, error) {
	course, err := d.queries.GetCourse(ctx, courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return course, ErrNotFound
	}
	return course, err
}

// GetCourseWithOwner satisfies the [Courses] interface.
func (d *DB) GetCourseWithOwner(ctx context.Context, courseID uint64) (db.GetCourseWithOwnerRow, error) {
	row, err := d.queries.GetCourseWithOwner(ctx, courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return row, ErrNotFound
	}
	return row, err
}

// CreateCourse satisfies the [Courses] interface.
func (d *DB) CreateCourse(ctx context.Context, course db.Course) (db.Course, error) {
	if course.ID == 0 {
		course.ID = d.ids.Next()
	}
	return d.queries.CreateCourse(ctx, db.CreateCourseParams(course))
}

// UpdateCourse satisfies the [Courses] interface.
func (d *DB) UpdateCourse(ctx context.Context, course db.Course) error {
	return d.queries.UpdateCourse(ctx, db.UpdateCourseParams{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		ID:              course.ID,
	})
}

// DeleteCourse satisfies the [Courses] interface.
func (d *DB) DeleteCourse(ctx context.Context, courseID uint64) error {
	return d.queries.DeleteCourse(ctx, courseID)
}

// isUniqueViolation reports whether err is a sqlite unique constraint
// failure, the backstop for concurrent duplicate-email inserts.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ Store = (*DB)(nil)
