package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidRedirectTarget is returned by ClickService.Track for
	// anything but a local absolute path.
	ErrInvalidRedirectTarget = errors.New("redirect target must be a local path")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
