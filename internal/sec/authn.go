package sec

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/authn"
	"github.com/labstack/echo/v4"

	"github.com/syllabusapp/syllabus/internal/storage"
	"github.com/syllabusapp/syllabus/internal/storage/db"
)

// AccessDenied is the only authentication failure message ever sent to a
// client. It deliberately does not distinguish an unknown email from a wrong
// password, to prevent user enumeration.
const AccessDenied = "Access Denied"

// Authenticate resolves the logged in user from req. The returned errors
// carry distinct messages for audit logging, but callers must respond with
// [AccessDenied] regardless of the cause.
func Authenticate(ctx context.Context, req *http.Request, store storage.Users) (user db.User, err error) {
	email, password, ok := req.BasicAuth()
	if !ok {
		return user, authn.Errorf("authorization header missing or malformed")
	}
	if user, err = store.GetUserByEmail(ctx, email); err != nil {
		return user, authn.Errorf("no user for email %q", email)
	}
	if err = ComparePassword(password, user.PasswordHash); err != nil {
		return user, authn.Errorf("password mismatch for email %q", email)
	}
	return user, nil
}

// RequireUser returns middleware that authenticates the request and attaches
// the resolved user to the request context. Requests that cannot be
// authenticated are terminated with a 401 and a generic body; the actual
// cause is only logged.
func RequireUser(logger *slog.Logger, store storage.Users) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			user, err := Authenticate(ctx, c.Request(), store)
			if err != nil {
				logger.WarnContext(ctx,
					"authentication failed",
					slog.Any("error", err),
				)
				return echo.NewHTTPError(http.StatusUnauthorized, AccessDenied)
			}
			logger.DebugContext(ctx,
				"authentication successful",
				slog.String("email", user.EmailAddress),
			)
			c.SetRequest(c.Request().WithContext(SetAuthenticatedUser(ctx, user)))
			return next(c)
		}
	}
}

// GetAuthenticatedUser returns the user information for the authenticated user.
// Returns a zero-value User if the context has no authenticated user or if
// the stored value is not a User (should only happen if middleware is
// misconfigured).
func GetAuthenticatedUser(ctx context.Context) db.User {
	if user, ok := authn.GetInfo(ctx).(db.User); ok {
		return user
	}
	return db.User{}
}

// SetAuthenticatedUser sets the user information for an authenticated user.
// [RequireUser] injects this information; this function is also used directly
// in tests.
func SetAuthenticatedUser(ctx context.Context, user db.User) context.Context {
	return authn.SetInfo(ctx, user)
}
