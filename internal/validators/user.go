package validators

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Field names accepted by [UserValidator.Validate] to restrict validation.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldOldPassword     = "password_old"
	FieldUserID          = "id"
	FieldPage            = "page"
	FieldPageSize        = "page_size"
	FieldSort            = "sort"
)

// Limits of the account input policy.
const (
	NameMaxLength     = 100
	PasswordMinLength = 6
	PasswordMaxLength = 32
	MaxPageSize       = 100
)

var sortableFields = []string{"name", "email", "created_at"}

// UserValidator checks the shape of account requests. It never looks at the
// store: uniqueness and credential checks belong to the services.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate implements [Validator]. Supported values are the account request
// models and [models.ListQuery], by value or pointer.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdate(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.ListQuery:
		return v.validateListQuery(value, fields...)
	case *models.ListQuery:
		return v.validateListQuery(*value, fields...)
	}

	return fmt.Errorf("%w: %w: %T", ErrValidation, ErrUnsupportedType, obj)
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldName:            func() error { return validateName(req.Name) },
		FieldEmail:           func() error { return validateEmail(req.Email) },
		FieldPassword:        func() error { return validatePassword(req.Password) },
		FieldPasswordConfirm: func() error { return required(req.PasswordConfirm, ErrConfirmationRequired) },
	}

	return run(checks, []string{FieldName, FieldEmail, FieldPassword, FieldPasswordConfirm}, fields)
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail:    func() error { return validateEmail(req.Email) },
		FieldPassword: func() error { return required(req.Password, ErrPasswordRequired) },
	}

	return run(checks, []string{FieldEmail, FieldPassword}, fields)
}

func (v *UserValidator) validateUpdate(req models.UpdateUserRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldUserID: func() error { return required(req.UserID, ErrInvalidUserID) },
		FieldName:   func() error { return validateName(req.Name) },
		FieldEmail:  func() error { return validateEmail(req.Email) },
	}

	return run(checks, []string{FieldUserID, FieldName, FieldEmail}, fields)
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldUserID:          func() error { return required(req.UserID, ErrInvalidUserID) },
		FieldOldPassword:     func() error { return required(req.OldPassword, ErrOldPasswordRequired) },
		FieldPassword:        func() error { return validatePassword(req.NewPassword) },
		FieldPasswordConfirm: func() error { return required(req.NewPasswordConfirm, ErrConfirmationRequired) },
	}

	return run(checks, []string{FieldUserID, FieldOldPassword, FieldPassword, FieldPasswordConfirm}, fields)
}

// validateListQuery accepts zero values: they are replaced by defaults later.
func (v *UserValidator) validateListQuery(q models.ListQuery, fields ...string) error {
	checks := map[string]func() error{
		FieldPage: func() error {
			if q.Page < 0 {
				return ErrInvalidPage
			}
			return nil
		},
		FieldPageSize: func() error {
			if q.PageSize < 0 || q.PageSize > MaxPageSize {
				return ErrInvalidPageSize
			}
			return nil
		},
		FieldSort: func() error {
			if q.SortBy != "" && !slices.Contains(sortableFields, q.SortBy) {
				return ErrInvalidSort
			}
			if q.SortOrder != "" && q.SortOrder != models.SortAsc && q.SortOrder != models.SortDesc {
				return ErrInvalidSort
			}
			return nil
		},
	}

	return run(checks, []string{FieldPage, FieldPageSize, FieldSort}, fields)
}

// run executes checks in order, limited to fields when any are given.
// The first failure is returned as a *FieldError.
func run(checks map[string]func() error, order []string, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, field := range fields {
		check, ok := checks[field]
		if !ok {
			return fmt.Errorf("%w: %w: %s", ErrValidation, ErrUnknownField, field)
		}
		if err := check(); err != nil {
			return &FieldError{Field: field, Err: err}
		}
	}

	return nil
}

func required(value string, err error) error {
	if value == "" {
		return err
	}
	return nil
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > NameMaxLength {
		return ErrInvalidName
	}
	return nil
}

// validateEmail accepts a bare addr-spec with a dotted domain. Display names
// ("John <john@x.io>") are rejected.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if at < 1 || !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}

// validatePassword enforces the password policy: 6..32 characters, latin
// letters, digits and specials only, at least one of each class.
func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	n := utf8.RuneCountInString(password)
	if n < PasswordMinLength || n > PasswordMaxLength {
		return ErrPasswordLength
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return ErrPasswordWhitespace
		case r > unicode.MaxASCII:
			return ErrPasswordNonLatin
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case unicode.IsPrint(r):
			special = true
		default:
			return ErrPasswordNonLatin
		}
	}

	switch {
	case !special:
		return ErrPasswordNoSpecial
	case !lower:
		return ErrPasswordNoLowercase
	case !upper:
		return ErrPasswordNoUppercase
	case !digit:
		return ErrPasswordNoDigit
	}

	return nil
}
