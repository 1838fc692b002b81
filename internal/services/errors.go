package services

import "errors"

var (
	// ErrUnauthenticated means no authenticated principal reached the
	// service. The middleware normally prevents this.
	ErrUnauthenticated = errors.New("no authenticated principal")

	// ErrMissingIdentity means the token carried no subject claim.
	ErrMissingIdentity = errors.New("token has no subject claim")

	// ErrMissingAPIKey means a holiday cache miss occurred with no
	// upstream credential configured.
	ErrMissingAPIKey = errors.New("holiday API key is not configured")

	// ErrUpstream wraps failures of the external holiday API.
	ErrUpstream = errors.New("holiday API request failed")

	// ErrTagNotOwned means a task referenced a tag id that does not
	// belong to the creating user.
	ErrTagNotOwned = errors.New("tag does not belong to user")

	// ErrCategoryNotOwned means a category referenced a parent that does
	// not belong to the creating user.
	ErrCategoryNotOwned = errors.New("category does not belong to user")
)
