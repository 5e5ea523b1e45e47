package routes

import (
	"net/http"
	"time"

	"github.com/wesleycpo2/spacered-sub000/controllers/auth"
	"github.com/wesleycpo2/spacered-sub000/controllers/users"
	"github.com/wesleycpo2/spacered-sub000/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes mendaftarkan semua route terkait user ke subrouter yang diberikan
func UsersRoutes(api *mux.Router) {
	// Rate limiter login/register: 60 per IP per 5 menit
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Rate limiter endpoint berautentikasi: 300 per IP per menit
	apiLimiter := middleware.NewIPRateLimiter(300, time.Minute)

	// Register & Login
	api.Handle("/auth/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/auth/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/auth/logout", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)
	api.Handle("/auth/set-password", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.SetPasswordHandler)))).Methods(http.MethodPost)

	// Subscription
	api.Handle("/subscription/status", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.SubscriptionStatusHandler)))).Methods(http.MethodGet)

	// Niches
	api.Handle("/niches", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListNichesHandler)))).Methods(http.MethodGet)
	api.Handle("/niches/{id:[0-9]+}/subscribe", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.SubscribeNicheHandler)))).Methods(http.MethodPost)
	api.Handle("/niches/{id:[0-9]+}/subscribe", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UnsubscribeNicheHandler)))).Methods(http.MethodDelete)

	// Notification config
	api.Handle("/notifications/config", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.NotificationConfigHandler)))).Methods(http.MethodGet)
	api.Handle("/notifications/config", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateNotificationConfigHandler)))).Methods(http.MethodPut)

	// Alerts
	api.Handle("/alerts/stats", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.AlertStatsHandler)))).Methods(http.MethodGet)
	api.Handle("/alerts/history", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.AlertHistoryHandler)))).Methods(http.MethodGet)

	// Products & trends
	api.Handle("/products", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ListProductsHandler)))).Methods(http.MethodGet)
	api.Handle("/products/{id:[0-9]+}/trends", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ProductTrendsHandler)))).Methods(http.MethodGet)
}
