package storage

import (
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syllabusapp/syllabus/internal/config"
	"github.com/syllabusapp/syllabus/internal/storage/db"
)

func TestDB(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.DBFilepath = filepath.Join(t.TempDir(), "db.sqlite")
	store, err := NewDB(t.Context(), cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	const userID = 123
	const userEmail = "joe@smith.com"
	owner, err := store.CreateUser(t.Context(), db.User{
		ID:           userID,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: userEmail,
		PasswordHash: []byte{},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(userID), owner.ID)

	t.Run("UserCRUD", func(t *testing.T) {
		t.Parallel()

		res, err := store.ListUsers(t.Context(), "", 100)
		require.NoError(t, err)
		require.NotEmpty(t, res)

		res, err = store.ListUsers(t.Context(), "zzz@example.com", 100)
		require.NoError(t, err)
		assert.Empty(t, res)

		actual, err := store.GetUser(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, owner, actual)

		_, err = store.GetUser(t.Context(), 0)
		require.ErrorIs(t, err, ErrNotFound)

		actual, err = store.GetUserByEmail(t.Context(), userEmail)
		require.NoError(t, err)
		assert.Equal(t, owner, actual)

		_, err = store.GetUserByEmail(t.Context(), "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = store.CreateUser(t.Context(), db.User{
			FirstName:    "Other",
			LastName:     "Joe",
			EmailAddress: userEmail,
			PasswordHash: []byte{},
		})
		require.ErrorIs(t, err, ErrAlreadyExists)

		user, err := store.CreateUser(t.Context(), db.User{
			FirstName:    "Sally",
			LastName:     "Jones",
			EmailAddress: "sally@jones.com",
			PasswordHash: []byte("foobar"),
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)

		err = store.DeleteUser(t.Context(), user.ID)
		require.NoError(t, err)
		_, err = store.GetUserByEmail(t.Context(), user.EmailAddress)
		require.ErrorIs(t, err, ErrNotFound)

		err = store.DeleteUser(t.Context(), user.ID)
		require.NoError(t, err)
	})

	t.Run("CourseCRUD", func(t *testing.T) {
		t.Parallel()

		course, err := store.CreateCourse(t.Context(), db.Course{
			Title:       "Build a Course API",
			Description: "REST endpoints over users and courses.",
			EstimatedTime: sql.NullString{
				Valid:  true,
				String: "12 hours",
			},
			UserID: userID,
		})
		require.NoError(t, err)
		assert.NotZero(t, course.ID)

		actual, err := store.GetCourse(t.Context(), course.ID)
		require.NoError(t, err)
		assert.Equal(t, course, actual)

		_, err = store.GetCourse(t.Context(), 0)
		require.ErrorIs(t, err, ErrNotFound)

		row, err := store.GetCourseWithOwner(t.Context(), course.ID)
		require.NoError(t, err)
		assert.Equal(t, course, row.Course)
		assert.Equal(t, owner, row.User)

		_, err = store.GetCourseWithOwner(t.Context(), 0)
		require.ErrorIs(t, err, ErrNotFound)

		course.Title = "Build a Better Course API"
		course.MaterialsNeeded = sql.NullString{Valid: true, String: "a laptop"}
		err = store.UpdateCourse(t.Context(), course)
		require.NoError(t, err)

		actual, err = store.GetCourse(t.Context(), course.ID)
		require.NoError(t, err)
		assert.Equal(t, course, actual)

		rows, err := store.ListCourses(t.Context())
		require.NoError(t, err)
		assert.NotEmpty(t, rows)

		err = store.DeleteCourse(t.Context(), course.ID)
		require.NoError(t, err)
		_, err = store.GetCourse(t.Context(), course.ID)
		require.ErrorIs(t, err, ErrNotFound)

		// Deletes are idempotent.
		err = store.DeleteCourse(t.Context(), course.ID)
		require.NoError(t, err)
	})

	t.Run("DeleteUserCascades", func(t *testing.T) {
		t.Parallel()

		user, err := store.CreateUser(t.Context(), db.User{
			FirstName:    "Cass",
			LastName:     "Cade",
			EmailAddress: "cass@cade.com",
			PasswordHash: []byte{},
		})
		require.NoError(t, err)

		course, err := store.CreateCourse(t.Context(), db.Course{
			Title:       "Ephemeral",
			Description: "Gone with its owner.",
			UserID:      user.ID,
		})
		require.NoError(t, err)

		err = store.DeleteUser(t.Context(), user.ID)
		require.NoError(t, err)

		_, err = store.GetCourse(t.Context(), course.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
