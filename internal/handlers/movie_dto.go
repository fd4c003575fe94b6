package handlers

import (
	"fmt"
	"time"

	"movie-review-backend/internal/models"
)

const releaseDateLayout = "2006-01-02"

type MovieRequest struct {
	Title       string `json:"title" example:"Inception"`
	Description string `json:"description" example:"A thief who steals corporate secrets..."`
	Director    string `json:"director" example:"Christopher Nolan"`
	ReleaseDate string `json:"release_date" example:"2010-07-16"`
	Genre       string `json:"genre" example:"Sci-Fi"`
	TrailerLink string `json:"trailer_link" example:"https://www.youtube.com/watch?v=YoHD9XEInc0"`
	PosterURL   string `json:"poster_url" example:"https://storage.example.com/movie-posters/posters/inception_1a2b3c4d.jpg"`
}

// MovieUpdateRequest uses pointers so PATCH can distinguish "field absent"
// from "field set to empty".
type MovieUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Director    *string `json:"director"`
	ReleaseDate *string `json:"release_date"`
	Genre       *string `json:"genre"`
	TrailerLink *string `json:"trailer_link"`
	PosterURL   *string `json:"poster_url"`
}

func (req *MovieRequest) toMovie() (*models.Movie, error) {
	movie := &models.Movie{
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		Genre:       req.Genre,
		TrailerLink: req.TrailerLink,
		PosterURL:   req.PosterURL,
	}
	if req.ReleaseDate != "" {
		d, err := time.Parse(releaseDateLayout, req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("release_date must be formatted as YYYY-MM-DD")
		}
		movie.ReleaseDate = &d
	}
	return movie, nil
}

func (req *MovieUpdateRequest) toUpdate() (models.MovieUpdate, error) {
	update := models.MovieUpdate{
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		Genre:       req.Genre,
		TrailerLink: req.TrailerLink,
		PosterURL:   req.PosterURL,
	}
	if req.ReleaseDate != nil {
		d, err := time.Parse(releaseDateLayout, *req.ReleaseDate)
		if err != nil {
			return models.MovieUpdate{}, fmt.Errorf("release_date must be formatted as YYYY-MM-DD")
		}
		update.ReleaseDate = &d
	}
	return update, nil
}
