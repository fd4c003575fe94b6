package models

import (
	"math"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review belongs to exactly one movie and one user. The composite unique
// index is the authority for the one-review-per-user-per-movie rule; a
// concurrent second insert fails at the database, not in application code.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	MovieID   uint      `gorm:"not null;uniqueIndex:ux_reviews_movie_user" json:"movie_id" example:"1"`
	UserID    uint      `gorm:"not null;uniqueIndex:ux_reviews_movie_user" json:"user_id" example:"1"`
	Movie     *Movie    `gorm:"foreignKey:MovieID" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Rating    int       `gorm:"not null" json:"rating" example:"5"`
	Comment   string    `gorm:"type:text;not null" json:"comment" example:"Outstanding!"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewResponse is the wire shape of a review. The reviewer appears as a
// username; the password hash and other user fields are never exposed.
type ReviewResponse struct {
	ID        uint      `json:"id" example:"1"`
	MovieID   uint      `json:"movie_id" example:"1"`
	Rating    int       `json:"rating" example:"5"`
	Comment   string    `json:"comment" example:"Outstanding!"`
	User      string    `json:"user" example:"moviebuff42"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r Review) ToResponse() ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		resp.User = r.User.Username
	}
	return resp
}

// ReviewUpdate carries a partial review update for PUT/PATCH.
type ReviewUpdate struct {
	Rating  *int
	Comment *string
}

// AverageOf returns the mean rating rounded to one decimal place, or nil
// when there are no reviews. Nil is the explicit "no rating" value; it is
// never reported as zero.
func AverageOf(reviews []Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := Round1(float64(sum) / float64(len(reviews)))
	return &avg
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RatingAggregate is the per-movie result of the bulk average query used
// by the movie list endpoint.
type RatingAggregate struct {
	MovieID       uint
	AverageRating float64
	ReviewCount   int64
}
