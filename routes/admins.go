package routes

import (
	"net/http"
	"time"

	"github.com/Athanas-ai/PrayerRequest/controllers/admins"
	"github.com/Athanas-ai/PrayerRequest/middleware"

	"github.com/gorilla/mux"
)

func SetAdminRoutes(api *mux.Router) {
	// Rate limiter for admin login: 5 attempts per IP per minute
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Login))).Methods(http.MethodPost)
	api.Handle("/admin/refresh", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Refresh))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	adminRouter.Handle("/logout", http.HandlerFunc(admins.Logout)).Methods(http.MethodPost)

	// Dashboard stats
	adminRouter.Handle("/dashboard", http.HandlerFunc(admins.GetDashboardStats)).Methods(http.MethodGet)

	// Challenge management
	adminRouter.Handle("/challenges", http.HandlerFunc(admins.ChallengeListHandler)).Methods(http.MethodGet)
	adminRouter.Handle("/challenges", http.HandlerFunc(admins.CreateChallengeHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/challenges/{id:[0-9]+}", http.HandlerFunc(admins.UpdateChallengeHandler)).Methods(http.MethodPut)
	adminRouter.Handle("/challenges/{id:[0-9]+}", http.HandlerFunc(admins.DeleteChallengeHandler)).Methods(http.MethodDelete)

	// Intention print queue
	adminRouter.Handle("/intentions", http.HandlerFunc(admins.IntentionListHandler)).Methods(http.MethodGet)
	adminRouter.Handle("/intentions/{id:[0-9]+}/printed", http.HandlerFunc(admins.MarkIntentionPrintedHandler)).Methods(http.MethodPut)
}
