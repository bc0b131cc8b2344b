package registry

import "errors"

var (
	// ErrMalformedResponse means the registry answered but the body did not
	// contain a usable versions array.
	ErrMalformedResponse = errors.New("malformed registry response")

	// ErrBadVersion means a version string from the registry does not parse
	// as a semantic version, so candidates cannot be totally ordered.
	ErrBadVersion = errors.New("unparseable version string")
)
