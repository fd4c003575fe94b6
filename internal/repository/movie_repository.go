package repository

import (
	"context"
	"errors"
	"time"

	"movie-review-backend/internal/database"
	"movie-review-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindByTitleWithReviews(ctx context.Context, title string) (*models.Movie, error)
	FindAll(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.Movie, int64, error)
	AggregateRatings(ctx context.Context, movieIDs []uint) (map[uint]models.RatingAggregate, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(movie).Error
}

// Delete removes the movie row; associated reviews go with it through the
// ON DELETE CASCADE foreign key.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByTitleWithReviews(ctx context.Context, title string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Reviews.User").
		Where("title = ?", title).
		First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR director ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	validSortFields := map[string]bool{
		"id": true, "title": true, "director": true, "genre": true,
		"release_date": true, "created_at": true, "updated_at": true,
	}
	if !validSortFields[sortBy] {
		sortBy = "title"
	}
	if order != "DESC" && order != "desc" {
		order = "ASC"
	}
	query = query.Order(sortBy + " " + order)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// AggregateRatings computes AVG(rating) and COUNT(*) per movie in a single
// query. The result is recomputed on every call; nothing is cached.
func (r *movieRepository) AggregateRatings(ctx context.Context, movieIDs []uint) (map[uint]models.RatingAggregate, error) {
	result := make(map[uint]models.RatingAggregate, len(movieIDs))
	if len(movieIDs) == 0 {
		return result, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.RatingAggregate
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("movie_id, AVG(rating) as average_rating, COUNT(*) as review_count").
		Where("movie_id IN ?", movieIDs).
		Group("movie_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.MovieID] = row
	}
	return result, nil
}
