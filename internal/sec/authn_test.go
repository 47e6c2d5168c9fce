package sec

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syllabusapp/syllabus/internal/storage"
	"github.com/syllabusapp/syllabus/internal/storage/db"
)

// userStub satisfies storage.Users with a single known user.
type userStub struct {
	user db.User
}

func (s userStub) ListUsers(context.Context, string, int32) ([]db.User, error) {
	return []db.User{s.user}, nil
}

func (s userStub) GetUser(_ context.Context, userID uint64) (db.User, error) {
	if userID != s.user.ID {
		return db.User{}, storage.ErrNotFound
	}
	return s.user, nil
}

func (s userStub) GetUserByEmail(_ context.Context, email string) (db.User, error) {
	if email != s.user.EmailAddress {
		return db.User{}, storage.ErrNotFound
	}
	return s.user, nil
}

func (s userStub) CreateUser(_ context.Context, user db.User) (db.User, error) {
	return user, storage.ErrAlreadyExists
}

func (s userStub) DeleteUser(context.Context, uint64) error { return nil }

func newUserStub(t *testing.T) userStub {
	t.Helper()
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	return userStub{user: db.User{
		ID:           42,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: hash,
	}}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	store := newUserStub(t)

	tests := []struct {
		name     string
		email    string
		password string
		header   bool
		wantErr  string
	}{
		{
			name:     "valid credentials",
			email:    "joe@smith.com",
			password: "hunter22",
			header:   true,
		},
		{
			name:    "missing header",
			header:  false,
			wantErr: "authorization header missing or malformed",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "hunter22",
			header:   true,
			wantErr:  "no user for email",
		},
		{
			name:     "wrong password",
			email:    "joe@smith.com",
			password: "wrong",
			header:   true,
			wantErr:  "password mismatch",
		},
		{
			name:     "email lookup is case sensitive",
			email:    "Joe@Smith.com",
			password: "hunter22",
			header:   true,
			wantErr:  "no user for email",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if test.header {
				req.SetBasicAuth(test.email, test.password)
			}

			user, err := Authenticate(t.Context(), req, store)
			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, store.user, user)
		})
	}
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	store := newUserStub(t)

	newServer := func() *echo.Echo {
		e := echo.New()
		e.GET("/private", func(c echo.Context) error {
			user := GetAuthenticatedUser(c.Request().Context())
			return c.String(http.StatusOK, user.EmailAddress)
		}, RequireUser(slog.Default(), store))
		return e
	}

	t.Run("accept", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.SetBasicAuth("joe@smith.com", "hunter22")
		rec := httptest.NewRecorder()
		newServer().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "joe@smith.com", rec.Body.String())
	})

	// Every rejection is identical to the client, regardless of cause.
	rejects := []struct {
		name  string
		setup func(*http.Request)
	}{
		{name: "no header", setup: func(*http.Request) {}},
		{name: "malformed header", setup: func(r *http.Request) {
			r.Header.Set("Authorization", "Basic not(base64")
		}},
		{name: "unknown email", setup: func(r *http.Request) {
			r.SetBasicAuth("nobody@example.com", "hunter22")
		}},
		{name: "wrong password", setup: func(r *http.Request) {
			r.SetBasicAuth("joe@smith.com", "wrong")
		}},
	}
	for _, test := range rejects {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			test.setup(req)
			rec := httptest.NewRecorder()
			newServer().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"message": AccessDenied}, body)
		})
	}
}

func TestAuthenticatedUserContext(t *testing.T) {
	t.Parallel()

	assert.Zero(t, GetAuthenticatedUser(t.Context()))

	user := db.User{ID: 7, EmailAddress: "joe@smith.com"}
	ctx := SetAuthenticatedUser(t.Context(), user)
	assert.Equal(t, user, GetAuthenticatedUser(ctx))
}
