package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Athanas-ai/PrayerRequest/controllers"
	"github.com/Athanas-ai/PrayerRequest/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for Docker health checks (root level)
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "prayer-request-api",
		})
	})).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or localhost defaults
	origins := []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000", "http://127.0.0.1:5173"}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	api := r.PathPrefix("/v1").Subrouter()

	// Catch-all OPTIONS handler for CORS preflight
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// The public surface is anonymous, so submissions and prayer taps are
	// IP rate limited.
	submitLimiter := middleware.NewIPRateLimiter(30, 5*time.Minute)
	prayLimiter := middleware.NewIPRateLimiter(240, time.Minute)

	// Intentions (public)
	api.Handle("/intentions", http.HandlerFunc(controllers.IntentionListHandler)).Methods(http.MethodGet)
	api.Handle("/intentions", submitLimiter.Middleware(http.HandlerFunc(controllers.CreateIntentionHandler))).Methods(http.MethodPost)
	api.Handle("/intentions/{id:[0-9]+}/pray", prayLimiter.Middleware(http.HandlerFunc(controllers.PrayIntentionHandler))).Methods(http.MethodPost)

	// Challenges (public)
	api.Handle("/challenges/active", http.HandlerFunc(controllers.ActiveChallengeHandler)).Methods(http.MethodGet)
	api.Handle("/challenges/{id:[0-9]+}/pray", prayLimiter.Middleware(http.HandlerFunc(controllers.PrayChallengeHandler))).Methods(http.MethodPost)

	SetAdminRoutes(api)

	return r
}
