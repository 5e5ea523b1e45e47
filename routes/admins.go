package routes

import (
	"net/http"
	"time"

	"github.com/wesleycpo2/spacered-sub000/controllers/admins"
	"github.com/wesleycpo2/spacered-sub000/middleware"

	"github.com/gorilla/mux"
)

func SetAdminRoutes(api *mux.Router) {
	// Rate limiter trigger admin: 1000/jam
	adminLimiter := middleware.NewIPRateLimiter(1000, time.Hour)

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminKeyMiddleware)
	adminRouter.Use(adminLimiter.Middleware)

	// Collection triggers
	adminRouter.Handle("/collect", http.HandlerFunc(admins.CollectHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/collect-all", http.HandlerFunc(admins.CollectAllHandler)).Methods(http.MethodPost)

	// Alert pipeline triggers
	adminRouter.Handle("/alerts/process", http.HandlerFunc(admins.ProcessAlertsHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/alerts/retry", http.HandlerFunc(admins.RetryAlertsHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/alerts/cleanup", http.HandlerFunc(admins.CleanupAlertsHandler)).Methods(http.MethodPost)

	// Auto collector lifecycle
	adminRouter.Handle("/auto-collector/start", http.HandlerFunc(admins.StartAutoCollectorHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/auto-collector/stop", http.HandlerFunc(admins.StopAutoCollectorHandler)).Methods(http.MethodPost)
	adminRouter.Handle("/auto-collector/status", http.HandlerFunc(admins.AutoCollectorStatusHandler)).Methods(http.MethodGet)

	// Alias lama untuk cron eksternal
	api.Handle("/tiktok/collect", middleware.AdminKeyMiddleware(adminLimiter.Middleware(http.HandlerFunc(admins.CollectAllHandler)))).Methods(http.MethodPost)
}
