package handlers

import (
	"movie-review-backend/internal/middleware"
	"movie-review-backend/internal/services"
	"movie-review-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new member
// @Description Self-service registration. The created account always has the member role.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} utils.StandardResponse "User created"
// @Failure 400 {object} utils.StandardResponse "Validation error or duplicate username"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("username", req.Username).Warn("Registration failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", toUserResponse(user))
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns the user's opaque bearer token. Repeated logins reuse the same token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse "Token and user summary"
// @Failure 401 {object} utils.StandardResponse "Invalid username or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, user, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the caller's bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse "Logged out"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	if err := h.service.Logout(c.Context(), actor); err != nil {
		h.logger.WithError(err).Error("Logout failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}

// CreateAdmin godoc
// @Summary Create an admin user
// @Description Creates a user with the admin role. Admin-only.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterRequest true "New admin data"
// @Success 201 {object} utils.StandardResponse "Admin created"
// @Failure 400 {object} utils.StandardResponse "Validation error or duplicate username"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 403 {object} utils.StandardResponse "Caller is not an admin"
// @Router /admin/create [post]
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.CreateAdmin(c.Context(), actor, req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("username", req.Username).Warn("Admin creation failed")
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Admin user created successfully", toUserResponse(user))
}
