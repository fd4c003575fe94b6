package models

import (
	"time"
)

type Movie struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	Title       string     `gorm:"uniqueIndex;not null" json:"title" example:"Inception"`
	Description string     `gorm:"type:text" json:"description,omitempty" example:"A thief who steals corporate secrets..."`
	Director    string     `gorm:"not null" json:"director" example:"Christopher Nolan"`
	ReleaseDate *time.Time `gorm:"type:date;index" json:"release_date,omitempty" example:"2010-07-16T00:00:00Z"`
	Genre       string     `gorm:"index" json:"genre,omitempty" example:"Sci-Fi"`
	TrailerLink string     `json:"trailer_link,omitempty" example:"https://www.youtube.com/watch?v=YoHD9XEInc0"`
	PosterURL   string     `json:"poster_url,omitempty" example:"https://storage.example.com/movies/posters/inception_1a2b3c4d.jpg"`
	Reviews     []Review   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieWithRating is a movie plus its on-demand review aggregate. The
// average is never stored; it is recomputed on every read.
type MovieWithRating struct {
	Movie
	AverageRating *float64 `json:"average_rating" example:"4.5"`
	ReviewCount   int64    `json:"review_count" example:"12"`
}

// MovieDetail additionally embeds the movie's reviews.
type MovieDetail struct {
	MovieWithRating
	Reviews []ReviewResponse `json:"reviews"`
}

// MovieUpdate carries a partial update. Nil fields are left untouched so
// the same shape serves both PUT and PATCH.
type MovieUpdate struct {
	Title       *string
	Description *string
	Director    *string
	ReleaseDate *time.Time
	Genre       *string
	TrailerLink *string
	PosterURL   *string
}
