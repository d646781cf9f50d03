// errors/access_errors.go
package errors

import "errors"

var (
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("incorrect username or password")
	ErrInvalidVerificationCode = errors.New("verification code is invalid or expired")
	ErrSessionNotFound         = errors.New("session not found")

	ErrRoleNotFound    = errors.New("role not found")
	ErrInvalidRoleData = errors.New("invalid role data")

	ErrGroupNotFound    = errors.New("group not found")
	ErrInvalidGroupData = errors.New("invalid group data")
)
