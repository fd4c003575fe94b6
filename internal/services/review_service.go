package services

import (
	"context"
	"fmt"
	"strings"

	"movie-review-backend/internal/models"
	"movie-review-backend/internal/policy"
	"movie-review-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	// GetReviewsByMovie lists a movie's reviews; public, 404 when the
	// movie does not exist.
	GetReviewsByMovie(ctx context.Context, title string) ([]models.ReviewResponse, error)
	// CreateReview creates a member's review for the movie named in the
	// URL. The movie and user are attached server-side; the client cannot
	// spoof either.
	CreateReview(ctx context.Context, actor *models.User, title string, rating int, comment string) (*models.Review, error)
	GetReviewByID(ctx context.Context, id uint) (*models.ReviewResponse, error)
	UpdateReview(ctx context.Context, actor *models.User, id uint, update models.ReviewUpdate) (*models.Review, error)
	DeleteReview(ctx context.Context, actor *models.User, id uint) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	movies  repository.MovieRepository
	logger  *logrus.Logger
}

func NewReviewService(reviews repository.ReviewRepository, movies repository.MovieRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		movies:  movies,
		logger:  logger,
	}
}

func (s *reviewService) GetReviewsByMovie(ctx context.Context, title string) ([]models.ReviewResponse, error) {
	movie, err := s.movies.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	result := make([]models.ReviewResponse, len(reviews))
	for i, r := range reviews {
		result[i] = r.ToResponse()
	}
	return result, nil
}

// CreateReview checks the parent movie's existence before the permission
// predicate: an anonymous request for a missing movie still gets 404, and
// a duplicate review surfaces as a conflict distinct from a permission
// failure.
func (s *reviewService) CreateReview(ctx context.Context, actor *models.User, title string, rating int, comment string) (*models.Review, error) {
	movie, err := s.movies.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	if !policy.CanCreateReview(actor) {
		return nil, ErrForbidden
	}
	if err := validateReview(rating, comment); err != nil {
		return nil, err
	}

	review := &models.Review{
		MovieID: movie.ID,
		UserID:  actor.ID,
		User:    actor,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie":  movie.Title,
		"user":   actor.Username,
		"rating": rating,
	}).Info("Review created")

	return review, nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id uint) (*models.ReviewResponse, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, actor *models.User, id uint, update models.ReviewUpdate) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdateReview(actor, review) {
		return nil, ErrForbidden
	}

	if update.Rating != nil {
		review.Rating = *update.Rating
	}
	if update.Comment != nil {
		review.Comment = *update.Comment
	}
	if err := validateReview(review.Rating, review.Comment); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"review_id": review.ID,
		"user":      actor.Username,
	}).Info("Review updated")

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor *models.User, id uint) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDeleteReview(actor, review) {
		return ErrForbidden
	}

	if err := s.reviews.Delete(ctx, review.ID); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"review_id": id,
		"user":      actor.Username,
	}).Info("Review deleted")

	return nil
}

func validateReview(rating int, comment string) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, models.MinRating, models.MaxRating)
	}
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("%w: comment is required", ErrValidation)
	}
	return nil
}
