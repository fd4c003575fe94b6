// Package policy holds the authorization decision rules as pure functions.
// Each predicate takes the acting user (nil for anonymous visitors) and,
// where ownership matters, the target resource. Nothing here touches the
// request context or the database, so every rule is unit-testable in
// isolation.
package policy

import "movie-review-backend/internal/models"

// CanListMovies: movie browsing is public.
func CanListMovies(actor *models.User) bool {
	return true
}

// CanCreateMovie: only admins manage the movie catalog.
func CanCreateMovie(actor *models.User) bool {
	return actor.IsAdmin()
}

// CanModifyMovie covers update and delete; both are admin-only.
func CanModifyMovie(actor *models.User) bool {
	return actor.IsAdmin()
}

// CanListReviews: reviews are publicly readable, including anonymously.
func CanListReviews(actor *models.User) bool {
	return true
}

// CanCreateReview: members only. Admins curate the catalog but do not
// review; an authenticated admin is denied, not just anonymous visitors.
func CanCreateReview(actor *models.User) bool {
	return actor.IsMember()
}

// CanUpdateReview: only the owning member may edit their review. Admins
// are deliberately excluded from editing other people's words.
func CanUpdateReview(actor *models.User, review *models.Review) bool {
	if actor == nil || review == nil {
		return false
	}
	return actor.IsMember() && review.UserID == actor.ID
}

// CanDeleteReview: the owner may retract their review, and admins may
// moderate any review away.
func CanDeleteReview(actor *models.User, review *models.Review) bool {
	if actor == nil || review == nil {
		return false
	}
	return actor.IsAdmin() || review.UserID == actor.ID
}

// CanCreateUser: the admin-creation endpoint is itself admin-only.
func CanCreateUser(actor *models.User) bool {
	return actor.IsAdmin()
}
