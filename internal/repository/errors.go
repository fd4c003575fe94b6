// Package repository implements the entity store on top of GORM/Postgres.
// Sentinel errors let the service and handler layers tell a missing row
// apart from a constraint violation without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested movie, user, review or token
// does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateReview is returned when an insert hits the composite unique
// index on (movie_id, user_id). The index decides the race between two
// concurrent creations: the second writer fails.
var ErrDuplicateReview = errors.New("user has already reviewed this movie")

// ErrDuplicateUsername is returned when a user insert hits the unique
// index on username.
var ErrDuplicateUsername = errors.New("username already exists")

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
