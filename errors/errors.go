package errors

import "fmt"

// Validation failures, surfaced as HTTP 400.
var (
	ErrEmptyContent = fmt.Errorf("message content is required")
	ErrInvalidRole  = fmt.Errorf("role must be user, assistant or system")
	ErrEmptyName    = fmt.Errorf("name is required")
)

// Authentication failures, surfaced as HTTP 401.
var (
	ErrUnauthenticated    = fmt.Errorf("unauthenticated")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)

var (
	ErrNotFound          = fmt.Errorf("not found")
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
)
