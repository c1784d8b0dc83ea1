package validators

import "errors"

// ErrValidation is wrapped by every error returned from a [Validator], so
// transports can map all of them to one status with a single errors.Is.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName          = errors.New("name must be 1 to 100 characters long")
	ErrInvalidEmail         = errors.New("email must be a valid email address")
	ErrPasswordRequired     = errors.New("password is required")
	ErrPasswordLength       = errors.New("password must be 6 to 32 characters long")
	ErrPasswordNoSpecial    = errors.New("password must contain at least 1 special character")
	ErrPasswordNoLowercase  = errors.New("password must contain at least 1 lowercase letter")
	ErrPasswordNoUppercase  = errors.New("password must contain at least 1 uppercase letter")
	ErrPasswordNoDigit      = errors.New("password must contain at least 1 digit")
	ErrPasswordWhitespace   = errors.New("password must not contain white spaces")
	ErrPasswordNonLatin     = errors.New("password must contain only latin characters")
	ErrConfirmationRequired = errors.New("password confirmation is required")
	ErrOldPasswordRequired  = errors.New("old password is required")
	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidPage          = errors.New("page must be a positive number")
	ErrInvalidPageSize      = errors.New("page size must be between 1 and 100")
	ErrInvalidSort          = errors.New("sort must be one of name, email, created_at with order asc or desc")
)

// FieldError reports the first rule a request field broke. It matches both
// [ErrValidation] and the rule's own sentinel with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error()
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
