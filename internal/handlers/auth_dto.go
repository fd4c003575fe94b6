package handlers

import (
	"time"

	"movie-review-backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" example:"moviebuff42"`
	Email    string `json:"email" example:"moviebuff42@example.com"`
	Password string `json:"password" example:"hunter2hunter2"`
}

type LoginRequest struct {
	Username string `json:"username" example:"moviebuff42"`
	Password string `json:"password" example:"hunter2hunter2"`
}

// UserResponse is the user summary returned by auth endpoints. The
// password hash never leaves the server.
type UserResponse struct {
	ID         uint      `json:"id" example:"1"`
	Username   string    `json:"username" example:"moviebuff42"`
	Email      string    `json:"email" example:"moviebuff42@example.com"`
	Role       string    `json:"role" example:"member"`
	JoinedDate time.Time `json:"joined_date"`
}

type LoginResponse struct {
	Token string       `json:"token" example:"9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		JoinedDate: u.JoinedDate,
	}
}
