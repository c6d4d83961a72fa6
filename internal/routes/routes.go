package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"health-monitoring-backend/internal/dto"
	"health-monitoring-backend/internal/handlers"
	"health-monitoring-backend/internal/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, readingHandler *handlers.ReadingHandler, healthHandler *handlers.HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Authentication routes
	mux.HandleFunc("POST /signup", authHandler.SignUp)
	mux.HandleFunc("POST /signin", authHandler.SignIn)

	// User routes
	mux.HandleFunc("GET /user/{id}", userHandler.Get)
	mux.HandleFunc("GET /userinfo/{id}", userHandler.GetProfile)
	mux.HandleFunc("PUT /userinfo/{id}", userHandler.UpdateProfile)

	// Blood-pressure reading routes
	mux.HandleFunc("GET /highBP/user/{user_id}", readingHandler.ListByUser)
	mux.HandleFunc("POST /highBP/user/{id}", readingHandler.Create)
	mux.HandleFunc("POST /highBP", readingHandler.CreateFlat)
	mux.HandleFunc("PUT /highBP/{id}", readingHandler.Update)
	mux.HandleFunc("DELETE /highBP/{id}", readingHandler.Delete)

	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// API documentation
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)

	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "welcome to health monitoring app API"})
}
