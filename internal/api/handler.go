package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/syllabusapp/syllabus/internal/sec"
	"github.com/syllabusapp/syllabus/internal/storage"
	"github.com/syllabusapp/syllabus/internal/storage/db"
)

// Client-facing messages. The 403 message never reveals the actual owner.
const (
	msgCourseNotFound       = "Sorry, there is no course with that id."
	msgCourseDeleteNotFound = "That course id does not exist."
	msgNotCourseOwner       = "You are not authorized to modify this course."
)

type handler struct {
	logger *slog.Logger
	store  storage.Store
}

func (h handler) register(e *echo.Echo) {
	grp := e.Group("/api")
	requireUser := sec.RequireUser(h.logger, h.store)

	grp.GET("/users", h.currentUser, requireUser)
	grp.POST("/users", h.createUser)

	grp.GET("/courses", h.listCourses)
	grp.GET("/courses/:id", h.getCourse)
	grp.POST("/courses", h.createCourse, requireUser)
	grp.PUT("/courses/:id", h.updateCourse, requireUser)
	grp.DELETE("/courses/:id", h.deleteCourse, requireUser)
}

type userResponse struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type courseResponse struct {
	ID              uint64       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   *string      `json:"estimatedTime"`
	MaterialsNeeded *string      `json:"materialsNeeded"`
	User            userResponse `json:"user"`
}

type userRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type courseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// validationErrors is the 400 body shape: one message per violated rule, in a
// stable order.
type validationErrors struct {
	Errors []string `json:"errors"`
}

func (h handler) currentUser(c echo.Context) error {
	user := sec.GetAuthenticatedUser(c.Request().Context())
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h handler) createUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	emailTaken, err := h.emailTaken(c, req.EmailAddress)
	if err != nil {
		return err
	}
	if errs := userErrors(req, emailTaken); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, validationErrors{Errors: errs})
	}

	hash, err := sec.HashPassword(req.Password)
	if err != nil {
		return err
	}
	_, err = h.store.CreateUser(ctx, db.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		PasswordHash: hash,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		// Lost a race with a concurrent signup; same response as the
		// pre-check.
		return c.JSON(http.StatusBadRequest, validationErrors{
			Errors: []string{msgDuplicateUser},
		})
	}
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}

// emailTaken is the cross-cutting uniqueness rule: only consulted when the
// email passes the field-shape checks.
func (h handler) emailTaken(c echo.Context, email string) (bool, error) {
	if email == "" || !validEmail(email) {
		return false, nil
	}
	_, err := h.store.GetUserByEmail(c.Request().Context(), email)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h handler) listCourses(c echo.Context) error {
	rows, err := h.store.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	courses := make([]courseResponse, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, toCourseResponse(row.Course, row.User))
	}
	return c.JSON(http.StatusOK, courses)
}

func (h handler) getCourse(c echo.Context) error {
	id, ok := courseID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, msgCourseNotFound)
	}
	row, err := h.store.GetCourseWithOwner(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, msgCourseNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(row.Course, row.User))
}

func (h handler) createCourse(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if errs := courseErrors(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, validationErrors{Errors: errs})
	}

	ctx := c.Request().Context()
	owner := sec.GetAuthenticatedUser(ctx)
	course, err := h.store.CreateCourse(ctx, db.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   toNullString(req.EstimatedTime),
		MaterialsNeeded: toNullString(req.MaterialsNeeded),
		UserID:          owner.ID,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(
		echo.HeaderLocation,
		"/api/courses/"+strconv.FormatUint(course.ID, 10),
	)
	return c.NoContent(http.StatusCreated)
}

func (h handler) updateCourse(c echo.Context) error {
	id, ok := courseID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, msgCourseNotFound)
	}

	ctx := c.Request().Context()
	course, err := h.store.GetCourse(ctx, id)
	// Existence is checked before ownership so a 403 never leaks whether the
	// course exists.
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, msgCourseNotFound)
	}
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if errs := courseErrors(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, validationErrors{Errors: errs})
	}

	if owner := sec.GetAuthenticatedUser(ctx); course.UserID != owner.ID {
		return echo.NewHTTPError(http.StatusForbidden, msgNotCourseOwner)
	}

	course.Title = req.Title
	course.Description = req.Description
	course.EstimatedTime = toNullString(req.EstimatedTime)
	course.MaterialsNeeded = toNullString(req.MaterialsNeeded)
	if err := h.store.UpdateCourse(ctx, course); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h handler) deleteCourse(c echo.Context) error {
	id, ok := courseID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, msgCourseDeleteNotFound)
	}

	ctx := c.Request().Context()
	course, err := h.store.GetCourse(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, msgCourseDeleteNotFound)
	}
	if err != nil {
		return err
	}

	if owner := sec.GetAuthenticatedUser(ctx); course.UserID != owner.ID {
		return echo.NewHTTPError(http.StatusForbidden, msgNotCourseOwner)
	}

	if err := h.store.DeleteCourse(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// courseID parses the :id path parameter. A non-numeric ID is reported the
// same way as a nonexistent course.
func courseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

func toUserResponse(user db.User) userResponse {
	return userResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

func toCourseResponse(course db.Course, owner db.User) courseResponse {
	return courseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   fromNullString(course.EstimatedTime),
		MaterialsNeeded: fromNullString(course.MaterialsNeeded),
		User:            toUserResponse(owner),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: *s}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
