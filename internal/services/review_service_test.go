package services

import (
	"context"
	"testing"

	"movie-review-backend/internal/models"
	"movie-review-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewServiceForTest() (ReviewService, *MockReviewRepository, *MockMovieRepository) {
	reviews := new(MockReviewRepository)
	movies := new(MockMovieRepository)
	return NewReviewService(reviews, movies, testLogger()), reviews, movies
}

func member(id uint, username string) *models.User {
	return &models.User{ID: id, Username: username, Role: models.RoleMember}
}

func admin(id uint, username string) *models.User {
	return &models.User{ID: id, Username: username, Role: models.RoleAdmin}
}

func TestCreateReviewAsMember(t *testing.T) {
	svc, reviews, movies := newReviewServiceForTest()
	actor := member(7, "moviebuff42")

	movies.On("FindByTitle", mock.Anything, "Inception").
		Return(&models.Movie{ID: 3, Title: "Inception"}, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(nil)

	review, err := svc.CreateReview(context.Background(), actor, "Inception", 5, "Outstanding!")
	require.NoError(t, err)
	assert.Equal(t, uint(3), review.MovieID)
	assert.Equal(t, uint(7), review.UserID)
	assert.Equal(t, 5, review.Rating)
	reviews.AssertExpectations(t)
}

func TestCreateReviewAdminForbidden(t *testing.T) {
	svc, reviews, movies := newReviewServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Inception").
		Return(&models.Movie{ID: 3, Title: "Inception"}, nil)

	_, err := svc.CreateReview(context.Background(), admin(1, "root"), "Inception", 5, "Great")
	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReviewAnonymousForbidden(t *testing.T) {
	svc, _, movies := newReviewServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Inception").
		Return(&models.Movie{ID: 3, Title: "Inception"}, nil)

	_, err := svc.CreateReview(context.Background(), nil, "Inception", 5, "Great")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateReviewMovieNotFoundBeforePermission(t *testing.T) {
	svc, _, movies := newReviewServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Missing").
		Return(nil, repository.ErrNotFound)

	// Even an anonymous caller gets 404 for a missing movie, not 403.
	_, err := svc.CreateReview(context.Background(), nil, "Missing", 5, "Great")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateReviewDuplicate(t *testing.T) {
	svc, reviews, movies := newReviewServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Inception").
		Return(&models.Movie{ID: 3, Title: "Inception"}, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(repository.ErrDuplicateReview)

	_, err := svc.CreateReview(context.Background(), member(7, "moviebuff42"), "Inception", 4, "Again")
	assert.ErrorIs(t, err, repository.ErrDuplicateReview)
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		comment string
	}{
		{name: "rating too low", rating: 0, comment: "fine"},
		{name: "rating too high", rating: 6, comment: "fine"},
		{name: "empty comment", rating: 3, comment: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reviews, movies := newReviewServiceForTest()
			movies.On("FindByTitle", mock.Anything, "Inception").
				Return(&models.Movie{ID: 3, Title: "Inception"}, nil)

			_, err := svc.CreateReview(context.Background(), member(7, "moviebuff42"), "Inception", tt.rating, tt.comment)
			assert.ErrorIs(t, err, ErrValidation)
			reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateReviewOwner(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()
	owner := member(7, "moviebuff42")

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7, Rating: 3, Comment: "ok"}, nil)
	reviews.On("Update", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(nil)

	rating := 5
	review, err := svc.UpdateReview(context.Background(), owner, 11, models.ReviewUpdate{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "ok", review.Comment)
}

func TestUpdateReviewNotOwnerForbidden(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7}, nil)

	rating := 5
	_, err := svc.UpdateReview(context.Background(), member(8, "other"), 11, models.ReviewUpdate{Rating: &rating})
	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateReviewAdminForbidden(t *testing.T) {
	// Admins moderate by deletion; they never edit someone else's words.
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7}, nil)

	rating := 1
	_, err := svc.UpdateReview(context.Background(), admin(1, "root"), 11, models.ReviewUpdate{Rating: &rating})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateReviewNotFound(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(99)).
		Return(nil, repository.ErrNotFound)

	rating := 5
	_, err := svc.UpdateReview(context.Background(), member(7, "moviebuff42"), 99, models.ReviewUpdate{Rating: &rating})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateReviewInvalidRating(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7, Rating: 3, Comment: "ok"}, nil)

	rating := 9
	_, err := svc.UpdateReview(context.Background(), member(7, "moviebuff42"), 11, models.ReviewUpdate{Rating: &rating})
	assert.ErrorIs(t, err, ErrValidation)
	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteReviewOwner(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7}, nil)
	reviews.On("Delete", mock.Anything, uint(11)).Return(nil)

	err := svc.DeleteReview(context.Background(), member(7, "moviebuff42"), 11)
	assert.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestDeleteReviewAdmin(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7}, nil)
	reviews.On("Delete", mock.Anything, uint(11)).Return(nil)

	err := svc.DeleteReview(context.Background(), admin(1, "root"), 11)
	assert.NoError(t, err)
}

func TestDeleteReviewOtherMemberForbidden(t *testing.T) {
	svc, reviews, _ := newReviewServiceForTest()

	reviews.On("FindByID", mock.Anything, uint(11)).
		Return(&models.Review{ID: 11, MovieID: 3, UserID: 7}, nil)

	err := svc.DeleteReview(context.Background(), member(8, "other"), 11)
	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetReviewsByMovie(t *testing.T) {
	svc, reviews, movies := newReviewServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Inception").
		Return(&models.Movie{ID: 3, Title: "Inception"}, nil)
	reviews.On("FindByMovieID", mock.Anything, uint(3)).
		Return([]models.Review{
			{ID: 1, MovieID: 3, Rating: 5, Comment: "great", User: &models.User{Username: "alice"}},
			{ID: 2, MovieID: 3, Rating: 3, Comment: "fine", User: &models.User{Username: "bob"}},
		}, nil)

	result, err := svc.GetReviewsByMovie(context.Background(), "Inception")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "alice", result[0].User)
	assert.Equal(t, "bob", result[1].User)
}

func TestGetReviewsByMovieNotFound(t *testing.T) {
	svc, _, movies := newReviewServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Missing").
		Return(nil, repository.ErrNotFound)

	_, err := svc.GetReviewsByMovie(context.Background(), "Missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
