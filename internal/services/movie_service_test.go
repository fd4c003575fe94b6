package services

import (
	"context"
	"errors"
	"testing"

	"movie-review-backend/internal/models"
	"movie-review-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMovieServiceForTest() (MovieService, *MockMovieRepository) {
	movies := new(MockMovieRepository)
	return NewMovieService(movies, testLogger()), movies
}

func TestGetAllMoviesAttachesRatings(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindAll", mock.Anything, 1, 20, "", "title", "ASC").
		Return([]models.Movie{{ID: 1, Title: "Inception"}, {ID: 2, Title: "Dune"}}, int64(2), nil)
	movies.On("AggregateRatings", mock.Anything, []uint{1, 2}).
		Return(map[uint]models.RatingAggregate{
			1: {MovieID: 1, AverageRating: 4.3333, ReviewCount: 3},
		}, nil)

	result, total, err := svc.GetAllMovies(context.Background(), 1, 20, "", "title", "ASC")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, result, 2)

	require.NotNil(t, result[0].AverageRating)
	assert.Equal(t, 4.3, *result[0].AverageRating)
	assert.Equal(t, int64(3), result[0].ReviewCount)

	// No reviews means nil average, never zero.
	assert.Nil(t, result[1].AverageRating)
	assert.Equal(t, int64(0), result[1].ReviewCount)
}

func TestGetAllMoviesClampsPagination(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindAll", mock.Anything, 1, 20, "", "title", "ASC").
		Return([]models.Movie{}, int64(0), nil)
	movies.On("AggregateRatings", mock.Anything, []uint{}).
		Return(map[uint]models.RatingAggregate{}, nil)

	_, _, err := svc.GetAllMovies(context.Background(), -3, 5000, "", "title", "ASC")
	assert.NoError(t, err)
	movies.AssertExpectations(t)
}

func TestGetMovieByTitle(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitleWithReviews", mock.Anything, "Inception").
		Return(&models.Movie{
			ID:    3,
			Title: "Inception",
			Reviews: []models.Review{
				{ID: 1, Rating: 5, Comment: "great", User: &models.User{Username: "alice"}},
				{ID: 2, Rating: 4, Comment: "good", User: &models.User{Username: "bob"}},
			},
		}, nil)

	detail, err := svc.GetMovieByTitle(context.Background(), "Inception")
	require.NoError(t, err)
	require.NotNil(t, detail.AverageRating)
	assert.Equal(t, 4.5, *detail.AverageRating)
	assert.Equal(t, int64(2), detail.ReviewCount)
	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, "alice", detail.Reviews[0].User)
	assert.Nil(t, detail.Movie.Reviews)
}

func TestGetMovieByTitleNoReviews(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitleWithReviews", mock.Anything, "Dune").
		Return(&models.Movie{ID: 4, Title: "Dune"}, nil)

	detail, err := svc.GetMovieByTitle(context.Background(), "Dune")
	require.NoError(t, err)
	assert.Nil(t, detail.AverageRating)
	assert.Empty(t, detail.Reviews)
}

func TestCreateMovieAdminOnly(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	err := svc.CreateMovie(context.Background(), member(7, "moviebuff42"), &models.Movie{Title: "Dune", Director: "Denis Villeneuve"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.CreateMovie(context.Background(), nil, &models.Movie{Title: "Dune", Director: "Denis Villeneuve"})
	assert.ErrorIs(t, err, ErrForbidden)

	movies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMovieAsAdmin(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil)

	err := svc.CreateMovie(context.Background(), admin(1, "root"), &models.Movie{Title: "Dune", Director: "Denis Villeneuve"})
	assert.NoError(t, err)
	movies.AssertExpectations(t)
}

func TestCreateMovieDuplicateTitle(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "uni_movies_title" (SQLSTATE 23505)`))

	err := svc.CreateMovie(context.Background(), admin(1, "root"), &models.Movie{Title: "Dune", Director: "Denis Villeneuve"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateMovieValidation(t *testing.T) {
	tests := []struct {
		name  string
		movie models.Movie
	}{
		{name: "missing title", movie: models.Movie{Director: "Someone"}},
		{name: "missing director", movie: models.Movie{Title: "Dune"}},
		{name: "bad trailer link", movie: models.Movie{Title: "Dune", Director: "Someone", TrailerLink: "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, movies := newMovieServiceForTest()
			err := svc.CreateMovie(context.Background(), admin(1, "root"), &tt.movie)
			assert.ErrorIs(t, err, ErrValidation)
			movies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateMovieNotFoundBeforePermission(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Missing").Return(nil, repository.ErrNotFound)

	// A missing movie is 404 even for callers who could never modify it.
	_, err := svc.UpdateMovie(context.Background(), nil, "Missing", models.MovieUpdate{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateMovieMemberForbidden(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Dune").
		Return(&models.Movie{ID: 4, Title: "Dune", Director: "Denis Villeneuve"}, nil)

	_, err := svc.UpdateMovie(context.Background(), member(7, "moviebuff42"), "Dune", models.MovieUpdate{})
	assert.ErrorIs(t, err, ErrForbidden)
	movies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateMoviePartial(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Dune").
		Return(&models.Movie{ID: 4, Title: "Dune", Director: "Denis Villeneuve", Genre: "Sci-Fi"}, nil)
	movies.On("Update", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil)

	genre := "Epic"
	movie, err := svc.UpdateMovie(context.Background(), admin(1, "root"), "Dune", models.MovieUpdate{Genre: &genre})
	require.NoError(t, err)
	assert.Equal(t, "Epic", movie.Genre)
	assert.Equal(t, "Dune", movie.Title)
	assert.Equal(t, "Denis Villeneuve", movie.Director)
}

func TestDeleteMovieAdminOnly(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Dune").
		Return(&models.Movie{ID: 4, Title: "Dune"}, nil)

	err := svc.DeleteMovie(context.Background(), member(7, "moviebuff42"), "Dune")
	assert.ErrorIs(t, err, ErrForbidden)
	movies.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteMovieAsAdmin(t *testing.T) {
	svc, movies := newMovieServiceForTest()

	movies.On("FindByTitle", mock.Anything, "Dune").
		Return(&models.Movie{ID: 4, Title: "Dune"}, nil)
	movies.On("Delete", mock.Anything, uint(4)).Return(nil)

	err := svc.DeleteMovie(context.Background(), admin(1, "root"), "Dune")
	assert.NoError(t, err)
	movies.AssertExpectations(t)
}
