package handlers

import (
	"strconv"

	"movie-review-backend/internal/middleware"
	"movie-review-backend/internal/services"
	"movie-review-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description Public movie listing with pagination, search and sorting. Every movie carries its freshly computed average rating.
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search by title, description or director"
// @Param sort_by query string false "Sort field (id, title, director, genre, release_date, created_at, updated_at)" default(title)
// @Param order query string false "Sort order (ASC/DESC)" default(ASC)
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")
	sortBy := c.Query("sort_by", "title")
	order := c.Query("order", "ASC")

	movies, total, err := h.service.GetAllMovies(c.Context(), page, limit, search, sortBy, order)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByTitle godoc
// @Summary Get movie by title
// @Description Public movie detail including its reviews and average rating.
// @Tags movies
// @Produce json
// @Param title path string true "Movie title"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{title} [get]
func (h *MovieHandler) GetMovieByTitle(c *fiber.Ctx) error {
	title, err := pathParam(c, "title")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie title")
	}

	movie, err := h.service.GetMovieByTitle(c.Context(), title)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Adds a movie to the catalog. Admin-only.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie body MovieRequest true "Movie data"
// @Success 201 {object} utils.StandardResponse "Movie created"
// @Failure 400 {object} utils.StandardResponse "Validation error or duplicate title"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller is not an admin"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	movie, err := req.toMovie()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.CreateMovie(c.Context(), actor, movie); err != nil {
		h.logger.WithError(err).WithField("title", req.Title).Warn("Movie creation failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Partially or fully updates a movie. Admin-only. Registered for both PUT and PATCH.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title path string true "Movie title"
// @Param movie body MovieUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Movie updated"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller is not an admin"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{title} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	title, err := pathParam(c, "title")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie title")
	}

	var req MovieUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	update, err := req.toUpdate()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.UpdateMovie(c.Context(), actor, title, update)
	if err != nil {
		h.logger.WithError(err).WithField("title", title).Warn("Movie update failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Deletes a movie; its reviews are cascade-deleted. Admin-only.
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param title path string true "Movie title"
// @Success 204 "Movie deleted"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller is not an admin"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{title} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	title, err := pathParam(c, "title")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie title")
	}

	if err := h.service.DeleteMovie(c.Context(), actor, title); err != nil {
		h.logger.WithError(err).WithField("title", title).Warn("Movie deletion failed")
		return utils.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
