package services

import "errors"

// ErrValidation marks malformed or missing input; handlers map it to 400.
// It is wrapped with a description of the failing field.
var ErrValidation = errors.New("validation failed")

// ErrForbidden means the actor is authenticated but the policy denies the
// operation; handlers map it to 403.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials covers a failed login; handlers map it to 401.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken covers a missing, malformed or revoked bearer token;
// handlers map it to 401.
var ErrInvalidToken = errors.New("invalid or expired token")
