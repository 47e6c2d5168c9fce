package api

import (
	"fmt"
	"net/mail"

	"github.com/syllabusapp/syllabus/internal/sec"
)

// Legacy-compatible validation messages.
const (
	msgInvalidEmail  = "Please provide a valid email."
	msgDuplicateUser = "Sorry, this user already exists"
)

var msgPasswordTooLong = fmt.Sprintf(
	"Please provide a password of %d characters or fewer.", sec.MaxPasswordBytes,
)

func msgRequired(field string) string {
	return fmt.Sprintf("Please provide a value for %q.", field)
}

// userErrors checks a signup payload and returns one message per violated
// rule, in field order. The rules for each field are evaluated independently
// of the other fields. emailTaken is resolved by the caller against the user
// store; it is only consulted once the email passes the shape checks.
func userErrors(req userRequest, emailTaken bool) []string {
	var errs []string
	if req.FirstName == "" {
		errs = append(errs, msgRequired("firstName"))
	}
	if req.LastName == "" {
		errs = append(errs, msgRequired("lastName"))
	}
	switch {
	case req.EmailAddress == "":
		errs = append(errs, msgRequired("emailAddress"))
	case !validEmail(req.EmailAddress):
		errs = append(errs, msgInvalidEmail)
	case emailTaken:
		errs = append(errs, msgDuplicateUser)
	}
	switch {
	case req.Password == "":
		errs = append(errs, msgRequired("password"))
	case len(req.Password) > sec.MaxPasswordBytes:
		// Anything longer cannot be hashed; reject here so a client field
		// value never surfaces as a server fault.
		errs = append(errs, msgPasswordTooLong)
	}
	return errs
}

// courseErrors checks a course payload for create and update. Both messages
// are reported when both fields are missing.
func courseErrors(req courseRequest) []string {
	var errs []string
	if req.Title == "" {
		errs = append(errs, msgRequired("title"))
	}
	if req.Description == "" {
		errs = append(errs, msgRequired("description"))
	}
	return errs
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
