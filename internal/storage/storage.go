// Package storage provides the state management for users and courses.
package storage

import (
	"context"

	"github.com/syllabusapp/syllabus/internal/storage/db"
)

const (
	// ErrNotFound is returned when a user or course cannot be found.
	ErrNotFound Error = "not found"
	// ErrAlreadyExists is returned if a unique user already exists.
	ErrAlreadyExists Error = "already exists"
	// ErrInternal is returned for any other type of error.
	ErrInternal Error = "internal error"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Users are the methods on a storage implementation that are responsible for
// accessing and modifying users.
type Users interface {
	// ListUsers returns the users in a list, paginated by the given email (if
	// provided) up to the given limit of records.
	ListUsers(ctx context.Context, afterEmail string, limit int32) ([]db.User, error)
	// GetUser returns a single user with the specified ID. An [ErrNotFound] is
	// returned if the user ID does not exist.
	GetUser(ctx context.Context, userID uint64) (db.User, error)
	// GetUserByEmail returns a single user with the specified email address.
	// An [ErrNotFound] is returned if the email address does not exist. The
	// lookup is an indexed point query against the unique email column.
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	// CreateUser creates the user, assigning an ID if one is not set. An
	// [ErrAlreadyExists] error is returned if the email address is already in
	// use.
	CreateUser(ctx context.Context, user db.User) (db.User, error)
	// DeleteUser removes a user and all their courses. Note that this is a
	// hard delete; data is not recoverable.
	DeleteUser(ctx context.Context, userID uint64) error
}

// Courses are the methods on a storage implementation that are responsible
// for accessing and modifying courses.
type Courses interface {
	// ListCourses returns every course along with its owning user.
	ListCourses(ctx context.Context) ([]db.GetCoursesRow, error)
	// GetCourse returns a single course with the specified ID. An
	// [ErrNotFound] is returned if the course ID does not exist.
	GetCourse(ctx context.Context, courseID uint64) (db.Course, error)
	// GetCourseWithOwner returns the course and its owning user. An
	// [ErrNotFound] is returned if the course ID does not exist.
	GetCourseWithOwner(ctx context.Context, courseID uint64) (db.GetCourseWithOwnerRow, error)
	// CreateCourse creates the course, assigning an ID if one is not set.
	CreateCourse(ctx context.Context, course db.Course) (db.Course, error)
	// UpdateCourse replaces the mutable fields of the course. This is a full
	// PUT-style update, so callers should do a GetCourse first prior to
	// calling this method. The owning user is never changed.
	UpdateCourse(ctx context.Context, course db.Course) error
	// DeleteCourse removes the course. Deleting an ID that does not exist is
	// not an error.
	DeleteCourse(ctx context.Context, courseID uint64) error
}

// Store is the combination interface for [Users] and [Courses].
type Store interface {
	Users
	Courses
	// Close releases any resources held by the store. An error is returned if
	// the store cannot be cleanly closed.
	Close() error
}
