package routes

import (
	"movie-review-backend/internal/handlers"
	"movie-review-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Setup wires the HTTP surface. Reads are public; every mutating route
// goes through RequireAuth, and the fine-grained role/ownership decision
// happens in the policy layer below.
func Setup(app *fiber.App, auth *middleware.AuthMiddleware, authHandler *handlers.AuthHandler, movieHandler *handlers.MovieHandler, reviewHandler *handlers.ReviewHandler, uploadHandler *handlers.UploadHandler) {
	api := app.Group("/api")

	// Authentication
	authGroup := api.Group("/auth")
	{
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
		authGroup.Post("/logout", auth.RequireAuth(), authHandler.Logout)
	}

	// Admin user management
	api.Post("/admin/create", auth.RequireAuth(), authHandler.CreateAdmin)

	// Movie catalog
	movies := api.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Post("/", auth.RequireAuth(), movieHandler.CreateMovie)

		// Nested review collection comes before the bare title routes so
		// "/movies/:title/reviews" does not match ":title" greedily.
		movies.Get("/:title/reviews", reviewHandler.GetReviewsByMovie)
		movies.Post("/:title/reviews", auth.RequireAuth(), reviewHandler.CreateReview)

		movies.Get("/:title", movieHandler.GetMovieByTitle)
		movies.Put("/:title", auth.RequireAuth(), movieHandler.UpdateMovie)
		movies.Patch("/:title", auth.RequireAuth(), movieHandler.UpdateMovie)
		movies.Delete("/:title", auth.RequireAuth(), movieHandler.DeleteMovie)
	}

	// Individual reviews
	reviews := api.Group("/reviews")
	{
		reviews.Get("/:id", reviewHandler.GetReviewByID)
		reviews.Put("/:id", auth.RequireAuth(), reviewHandler.UpdateReview)
		reviews.Patch("/:id", auth.RequireAuth(), reviewHandler.UpdateReview)
		reviews.Delete("/:id", auth.RequireAuth(), reviewHandler.DeleteReview)
	}

	// Poster uploads
	api.Get("/upload/presign", auth.RequireAuth(), uploadHandler.GetPosterUploadURL)
}
