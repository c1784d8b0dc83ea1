package password

import "errors"

var (
	ErrInvalidHash   = errors.New("invalid password hash")
	ErrGenerateSalt  = errors.New("error generating salt")
	ErrInvalidParams = errors.New("invalid argon2 parameters")
)
