package domain

import "errors"

var (
	ErrDuplicateCropName       = errors.New("crop already exists")
	ErrCropNotFound            = errors.New("crop not found")
	ErrInvalidYieldValue       = errors.New("invalid yield value")
	ErrEmptyCropName           = errors.New("crop name is required")
	ErrRegionNotFound          = errors.New("region not found")
	ErrInvalidWaterRequirement = errors.New("invalid water requirement")
)

var (
	ErrAuthenticationFailed = errors.New("invalid credentials or role mismatch")
	ErrEmptyCredential      = errors.New("username and password are required")
	ErrNoActiveSession      = errors.New("no active session")
	ErrUserExists           = errors.New("user already exists")
	ErrForbidden            = errors.New("access forbidden")
)
