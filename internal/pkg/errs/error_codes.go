/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	// The response data lists every offending field.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: User Account Errors
const (
	// ErrInvalidUserID indicates that the user identifier is not a well-formed key.
	ErrInvalidUserID = 2001

	// ErrUserNotFound indicates that no user matches the requested id, ign or email.
	ErrUserNotFound = 2002

	// ErrUserAlreadyExists indicates that the email, discord or ign is already registered.
	ErrUserAlreadyExists = 2003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
