package handlers

import (
	"movie-review-backend/internal/middleware"
	"movie-review-backend/internal/policy"
	"movie-review-backend/internal/services"
	"movie-review-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	minioService *services.MinIOService
	logger       *logrus.Logger
}

func NewUploadHandler(minioService *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		minioService: minioService,
		logger:       logger,
	}
}

// GetPosterUploadURL godoc
// @Summary Get a presigned poster upload URL
// @Description Generates a presigned PUT URL for uploading a movie poster. Admin-only, like the rest of catalog management.
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Param filename query string true "Poster filename"
// @Success 200 {object} utils.StandardResponse "Presigned and public URLs"
// @Failure 400 {object} utils.StandardResponse "Missing filename"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller is not an admin"
// @Router /upload/presign [get]
func (h *UploadHandler) GetPosterUploadURL(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	if !policy.CanCreateMovie(actor) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to perform this action")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.minioService.GeneratePosterUploadURL(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate poster upload URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate upload URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Upload URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
