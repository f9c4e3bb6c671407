// Package field holds per-input form state and the validation rules shared by
// the auth forms: required, email format, password length, confirmation match.
//
// Validators return true when the field is invalid and record a user-facing
// message on the state as a side effect. A valid field leaves any previous
// message untouched.
package field

import "regexp"

// State is the value/error pair for a single form input.
type State struct {
	Value string
	Error string
}

// New returns an empty field with no error.
func New() *State {
	return &State{}
}

// emailPattern is intentionally lowercase-only: the API stores emails
// case-normalized, so input must be lowercased before validation.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

const (
	// Password length limits enforced by the API.
	passwordMinLength = 12
	passwordMaxLength = 64
)

// IsEmpty reports whether the field is blank, recording the required-field
// message when it is.
func IsEmpty(s *State) bool {
	if s.Value == "" {
		s.Error = "This field is required"
		return true
	}
	return false
}

// IsEmailInvalid reports whether the value is not a plausible email address.
func IsEmailInvalid(s *State) bool {
	if !emailPattern.MatchString(s.Value) {
		s.Error = "Email is not in the correct format"
		return true
	}
	return false
}

// IsPasswordInvalid reports whether the value violates the password length
// limits.
func IsPasswordInvalid(s *State) bool {
	if len(s.Value) < passwordMinLength {
		s.Error = "Password must be at least 12 characters long"
		return true
	}
	if len(s.Value) > passwordMaxLength {
		s.Error = "Password must be at most 64 characters long"
		return true
	}
	return false
}

// ArePasswordsDifferent reports whether the confirmation does not match the
// password, recording the mismatch on the confirmation field.
func ArePasswordsDifferent(s, confirm *State) bool {
	if s.Value != confirm.Value {
		confirm.Error = "Passwords do not match"
		return true
	}
	return false
}
