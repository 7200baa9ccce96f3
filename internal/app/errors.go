package app

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUsernameExists       = errors.New("username already exists")
	ErrInvalidCredential    = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrStatusNotFound       = errors.New("status not found")
	ErrStatusContentEmpty   = errors.New("status content is empty")
	ErrStatusContentTooLong = errors.New("status content is too long")
	ErrPokemonNotFound      = errors.New("pokemon not found")
	ErrForbidden            = errors.New("permission denied")
	ErrConflict             = errors.New("concurrent update, try again")
)
