package policy

import (
	"testing"

	"movie-review-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	anonymous *models.User
	admin     = &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}
	member    = &models.User{ID: 2, Username: "member", Role: models.RoleMember}
	other     = &models.User{ID: 3, Username: "other", Role: models.RoleMember}
)

func TestMoviePermissions(t *testing.T) {
	tests := []struct {
		name      string
		actor     *models.User
		canList   bool
		canCreate bool
		canModify bool
	}{
		{"anonymous", anonymous, true, false, false},
		{"member", member, true, false, false},
		{"admin", admin, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canList, CanListMovies(tt.actor))
			assert.Equal(t, tt.canCreate, CanCreateMovie(tt.actor))
			assert.Equal(t, tt.canModify, CanModifyMovie(tt.actor))
		})
	}
}

func TestReviewListIsPublic(t *testing.T) {
	assert.True(t, CanListReviews(anonymous))
	assert.True(t, CanListReviews(member))
	assert.True(t, CanListReviews(admin))
}

func TestCanCreateReview(t *testing.T) {
	assert.False(t, CanCreateReview(anonymous), "anonymous visitors cannot review")
	assert.True(t, CanCreateReview(member))
	assert.False(t, CanCreateReview(admin), "admins are denied review creation")
}

func TestCanUpdateReview(t *testing.T) {
	review := &models.Review{ID: 10, MovieID: 1, UserID: member.ID}

	assert.True(t, CanUpdateReview(member, review), "owner may edit")
	assert.False(t, CanUpdateReview(other, review), "another member may not edit")
	assert.False(t, CanUpdateReview(admin, review), "admins may not edit reviews")
	assert.False(t, CanUpdateReview(anonymous, review))
	assert.False(t, CanUpdateReview(member, nil))
}

func TestCanDeleteReview(t *testing.T) {
	review := &models.Review{ID: 10, MovieID: 1, UserID: member.ID}

	assert.True(t, CanDeleteReview(member, review), "owner may delete")
	assert.True(t, CanDeleteReview(admin, review), "admins may delete any review")
	assert.False(t, CanDeleteReview(other, review))
	assert.False(t, CanDeleteReview(anonymous, review))
}

func TestCanCreateUser(t *testing.T) {
	assert.True(t, CanCreateUser(admin))
	assert.False(t, CanCreateUser(member))
	assert.False(t, CanCreateUser(anonymous))
}
