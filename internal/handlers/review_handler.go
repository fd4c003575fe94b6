package handlers

import (
	"strconv"

	"movie-review-backend/internal/middleware"
	"movie-review-backend/internal/models"
	"movie-review-backend/internal/services"
	"movie-review-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// GetReviewsByMovie godoc
// @Summary List a movie's reviews
// @Description Public listing of all reviews for a movie, looked up by title.
// @Tags reviews
// @Produce json
// @Param title path string true "Movie title"
// @Success 200 {object} utils.StandardResponse "Reviews"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{title}/reviews [get]
func (h *ReviewHandler) GetReviewsByMovie(c *fiber.Ctx) error {
	title, err := pathParam(c, "title")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie title")
	}

	reviews, err := h.service.GetReviewsByMovie(c.Context(), title)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// CreateReview godoc
// @Summary Create a review
// @Description Creates the caller's review for a movie. Members only; one review per member per movie. The movie comes from the URL and the reviewer from the token, never from the body.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title path string true "Movie title"
// @Param review body ReviewRequest true "Review data"
// @Success 201 {object} utils.StandardResponse "Review created"
// @Failure 400 {object} utils.StandardResponse "Validation error or duplicate review"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller is not a member"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{title}/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	title, err := pathParam(c, "title")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie title")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.CreateReview(c.Context(), actor, title, req.Rating, req.Comment)
	if err != nil {
		h.logger.WithError(err).WithField("title", title).Warn("Review creation failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", review.ToResponse())
}

// GetReviewByID godoc
// @Summary Get a review
// @Description Public retrieval of a single review by id.
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse "Review"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReviewByID(c *fiber.Ctx) error {
	id, err := reviewID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	review, err := h.service.GetReviewByID(c.Context(), id)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review retrieved successfully", review)
}

// UpdateReview godoc
// @Summary Update a review
// @Description Updates a review. Only the owning member may edit; admins are denied. Registered for both PUT and PATCH.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param review body ReviewUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Review updated"
// @Failure 400 {object} utils.StandardResponse "Validation error"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller does not own this review"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	id, err := reviewID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	var req ReviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.UpdateReview(c.Context(), actor, id, models.ReviewUpdate{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.logger.WithError(err).WithField("review_id", id).Warn("Review update failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", review.ToResponse())
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Deletes a review. Allowed for the owning member or any admin.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "Review deleted"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller may not delete this review"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	id, err := reviewID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(c.Context(), actor, id); err != nil {
		h.logger.WithError(err).WithField("review_id", id).Warn("Review deletion failed")
		return utils.FromError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func reviewID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
