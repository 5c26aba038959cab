package services

import "errors"

var (
	ErrMissingSignupFields = errors.New("username, email, and password are required")
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrEmailTaken          = errors.New("email already exists")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrAccountNotFound     = errors.New("user not found")
	ErrUnsupportedFormat   = errors.New("unsupported file format")
)
