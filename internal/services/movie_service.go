package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"movie-review-backend/internal/models"
	"movie-review-backend/internal/policy"
	"movie-review-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	GetAllMovies(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.MovieWithRating, int64, error)
	GetMovieByTitle(ctx context.Context, title string) (*models.MovieDetail, error)
	CreateMovie(ctx context.Context, actor *models.User, movie *models.Movie) error
	UpdateMovie(ctx context.Context, actor *models.User, title string, update models.MovieUpdate) (*models.Movie, error)
	DeleteMovie(ctx context.Context, actor *models.User, title string) error
}

type movieService struct {
	repo         repository.MovieRepository
	logger       *logrus.Logger
	minioService *MinIOService
}

func NewMovieService(repo repository.MovieRepository, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:   repo,
		logger: logger,
	}
}

func (s *movieService) SetMinIOService(minioSvc *MinIOService) {
	s.minioService = minioSvc
}

// GetAllMovies attaches the freshly computed rating aggregate to every
// movie in the page. A movie without reviews carries a nil average.
func (s *movieService) GetAllMovies(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.MovieWithRating, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	movies, total, err := s.repo.FindAll(ctx, page, limit, search, sortBy, order)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	aggregates, err := s.repo.AggregateRatings(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]models.MovieWithRating, len(movies))
	for i, m := range movies {
		result[i] = models.MovieWithRating{Movie: m}
		if agg, ok := aggregates[m.ID]; ok {
			avg := models.Round1(agg.AverageRating)
			result[i].AverageRating = &avg
			result[i].ReviewCount = agg.ReviewCount
		}
	}
	return result, total, nil
}

func (s *movieService) GetMovieByTitle(ctx context.Context, title string) (*models.MovieDetail, error) {
	movie, err := s.repo.FindByTitleWithReviews(ctx, title)
	if err != nil {
		return nil, err
	}

	detail := &models.MovieDetail{
		MovieWithRating: models.MovieWithRating{
			Movie:         *movie,
			AverageRating: models.AverageOf(movie.Reviews),
			ReviewCount:   int64(len(movie.Reviews)),
		},
		Reviews: make([]models.ReviewResponse, len(movie.Reviews)),
	}
	for i, r := range movie.Reviews {
		detail.Reviews[i] = r.ToResponse()
	}
	detail.Movie.Reviews = nil
	return detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, actor *models.User, movie *models.Movie) error {
	if !policy.CanCreateMovie(actor) {
		return ErrForbidden
	}
	if err := validateMovie(movie.Title, movie.Director, movie.TrailerLink); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		if isUniqueTitleErr(err) {
			return fmt.Errorf("%w: a movie with this title already exists", ErrValidation)
		}
		return err
	}

	s.logger.WithField("title", movie.Title).Info("Movie created")
	return nil
}

func (s *movieService) UpdateMovie(ctx context.Context, actor *models.User, title string, update models.MovieUpdate) (*models.Movie, error) {
	movie, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyMovie(actor) {
		return nil, ErrForbidden
	}

	oldPoster := movie.PosterURL

	if update.Title != nil {
		movie.Title = *update.Title
	}
	if update.Description != nil {
		movie.Description = *update.Description
	}
	if update.Director != nil {
		movie.Director = *update.Director
	}
	if update.ReleaseDate != nil {
		movie.ReleaseDate = update.ReleaseDate
	}
	if update.Genre != nil {
		movie.Genre = *update.Genre
	}
	if update.TrailerLink != nil {
		movie.TrailerLink = *update.TrailerLink
	}
	if update.PosterURL != nil {
		movie.PosterURL = *update.PosterURL
	}

	if err := validateMovie(movie.Title, movie.Director, movie.TrailerLink); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, movie); err != nil {
		if isUniqueTitleErr(err) {
			return nil, fmt.Errorf("%w: a movie with this title already exists", ErrValidation)
		}
		return nil, err
	}

	// Drop the replaced poster object so the bucket does not accumulate
	// orphans.
	if s.minioService != nil && oldPoster != "" && movie.PosterURL != oldPoster {
		if s.minioService.OwnsURL(oldPoster) {
			if err := s.minioService.DeletePoster(oldPoster); err != nil {
				s.logger.WithError(err).Warn("Failed to delete old poster from MinIO")
			}
		}
	}

	s.logger.WithField("title", movie.Title).Info("Movie updated")
	return movie, nil
}

// DeleteMovie removes the movie; its reviews disappear with it through the
// storage-level cascade.
func (s *movieService) DeleteMovie(ctx context.Context, actor *models.User, title string) error {
	movie, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if !policy.CanModifyMovie(actor) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, movie.ID); err != nil {
		return err
	}

	if s.minioService != nil && movie.PosterURL != "" && s.minioService.OwnsURL(movie.PosterURL) {
		if err := s.minioService.DeletePoster(movie.PosterURL); err != nil {
			s.logger.WithError(err).Warn("Failed to delete poster from MinIO")
		}
	}

	s.logger.WithField("title", movie.Title).Info("Movie deleted")
	return nil
}

func validateMovie(title, director, trailerLink string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: movie title is required", ErrValidation)
	}
	if strings.TrimSpace(director) == "" {
		return fmt.Errorf("%w: director is required", ErrValidation)
	}
	if trailerLink != "" {
		u, err := url.Parse(trailerLink)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: trailer_link must be a valid http(s) URL", ErrValidation)
		}
	}
	return nil
}

func isUniqueTitleErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
