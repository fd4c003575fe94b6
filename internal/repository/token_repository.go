package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"movie-review-backend/internal/database"
	"movie-review-backend/internal/models"

	"gorm.io/gorm"
)

// TokenRepository persists the single opaque bearer token each user holds.
type TokenRepository interface {
	// GetOrCreate returns the user's existing token, issuing one on first
	// login. Repeated logins reuse the same key.
	GetOrCreate(ctx context.Context, userID uint) (*models.AuthToken, error)
	// FindByKey resolves a raw token key to its owning user.
	FindByKey(ctx context.Context, key string) (*models.AuthToken, error)
	// DeleteByUserID revokes the user's token. Deleting an absent token is
	// not an error; logout is idempotent at the storage level.
	DeleteByUserID(ctx context.Context, userID uint) error
}

type tokenRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTokenRepository(db *database.Database) TokenRepository {
	return &tokenRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *tokenRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *tokenRepository) GetOrCreate(ctx context.Context, userID uint) (*models.AuthToken, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var token models.AuthToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := newTokenKey()
	if err != nil {
		return nil, err
	}
	token = models.AuthToken{UserID: userID, Key: key}
	if err := r.db.WithContext(ctx).Create(&token).Error; err != nil {
		// Two concurrent first logins: the unique index on user_id lets
		// only one insert through, so fall back to reading the winner.
		if isUniqueViolation(err) {
			if readErr := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; readErr == nil {
				return &token, nil
			}
		}
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var token models.AuthToken
	err := r.db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}

// newTokenKey returns 40 hex characters of cryptographically secure
// randomness.
func newTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
