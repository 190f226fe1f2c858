package core

import "errors"

var (
	ErrNotFound       = errors.New("hello: not found")
	ErrAPIUnreachable = errors.New("hello: api unreachable")
	ErrAPIStatus      = errors.New("hello: api returned an error status")
	ErrAPIBody        = errors.New("hello: api response unusable")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAPIError reports whether err came from talking to the backend API.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPIUnreachable) ||
		errors.Is(err, ErrAPIStatus) ||
		errors.Is(err, ErrAPIBody)
}
