package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dj-backend/internal/handlers"
	"dj-backend/internal/middleware"
	"dj-backend/internal/models"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	bookingHandler *handlers.BookingHandler,
	financeHandler *handlers.FinanceHandler,
	ledgerHandler *handlers.LedgerHandler,
	inventoryHandler *handlers.InventoryHandler,
	productRequestHandler *handlers.ProductRequestHandler,
	packageHandler *handlers.PackageHandler,
	systemSettingHandler *handlers.SystemSettingHandler,
	statsHandler *handlers.StatsHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	totpHandler *handlers.TOTPHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)
	adminOrCrew := authMiddleware.RequireRole(models.RoleAdmin, models.RoleCrew)

	// Public routes
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/stats", statsHandler.Get).Methods("GET")
	r.HandleFunc("/api/packages", packageHandler.List).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/verify-2fa", authHandler.Verify2FA).Methods("POST")
	r.HandleFunc("/auth/otp/request", authHandler.RequestOTP).Methods("POST")
	r.HandleFunc("/auth/otp/verify", authHandler.VerifyOTP).Methods("POST")

	// Protected API routes - Session
	sessionAPI := r.PathPrefix("/auth").Subrouter()
	sessionAPI.Use(authMiddleware.Authenticate)
	sessionAPI.HandleFunc("/me", authHandler.Me).Methods("GET")
	sessionAPI.HandleFunc("/totp/setup", totpHandler.Setup).Methods("POST")
	sessionAPI.HandleFunc("/totp/enable", totpHandler.Enable).Methods("POST")
	sessionAPI.HandleFunc("/totp/disable", totpHandler.Disable).Methods("POST")

	// Protected API routes - Bookings (customers create and see their own,
	// crew see assigned events, admins see everything)
	bookingsAPI := r.PathPrefix("/api/bookings").Subrouter()
	bookingsAPI.Use(authMiddleware.Authenticate)
	bookingsAPI.HandleFunc("", bookingHandler.List).Methods("GET")
	bookingsAPI.HandleFunc("", bookingHandler.Create).Methods("POST")
	bookingsAPI.HandleFunc("/pending-count", adminOnly(http.HandlerFunc(bookingHandler.PendingCount)).ServeHTTP).Methods("GET")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.Get).Methods("GET")
	bookingsAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(bookingHandler.Update)).ServeHTTP).Methods("PUT")
	bookingsAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(bookingHandler.Delete)).ServeHTTP).Methods("DELETE")
	bookingsAPI.HandleFunc("/{id}/status", adminOnly(http.HandlerFunc(bookingHandler.ChangeStatus)).ServeHTTP).Methods("PATCH")
	bookingsAPI.HandleFunc("/{id}/mark-paid", adminOnly(http.HandlerFunc(bookingHandler.MarkPaid)).ServeHTTP).Methods("POST")
	bookingsAPI.HandleFunc("/{id}/request-payment", adminOnly(http.HandlerFunc(bookingHandler.RequestPayment)).ServeHTTP).Methods("POST")
	bookingsAPI.HandleFunc("/{id}/crew", adminOnly(http.HandlerFunc(bookingHandler.AssignCrew)).ServeHTTP).Methods("PUT")
	bookingsAPI.HandleFunc("/{id}/check-in", adminOrCrew(http.HandlerFunc(bookingHandler.CheckIn)).ServeHTTP).Methods("POST")

	// Protected API routes - Finance (admin only)
	financeAPI := r.PathPrefix("/api/finance").Subrouter()
	financeAPI.Use(authMiddleware.Authenticate)
	financeAPI.HandleFunc("", adminOnly(http.HandlerFunc(financeHandler.List)).ServeHTTP).Methods("GET")
	financeAPI.HandleFunc("", adminOnly(http.HandlerFunc(financeHandler.Create)).ServeHTTP).Methods("POST")
	financeAPI.HandleFunc("/event-expense", adminOnly(http.HandlerFunc(financeHandler.EventExpense)).ServeHTTP).Methods("POST")
	financeAPI.HandleFunc("/crew-payout", adminOnly(http.HandlerFunc(financeHandler.CrewPayout)).ServeHTTP).Methods("POST")
	financeAPI.HandleFunc("/pnl/{id}", adminOnly(http.HandlerFunc(financeHandler.EventPnL)).ServeHTTP).Methods("GET")
	financeAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(financeHandler.Update)).ServeHTTP).Methods("PUT")
	financeAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(financeHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Customer ledger (admin only)
	ledgerAPI := r.PathPrefix("/api/ledger").Subrouter()
	ledgerAPI.Use(authMiddleware.Authenticate)
	ledgerAPI.HandleFunc("", adminOnly(http.HandlerFunc(ledgerHandler.Get)).ServeHTTP).Methods("GET")
	ledgerAPI.HandleFunc("/export", adminOnly(http.HandlerFunc(ledgerHandler.ExportCSV)).ServeHTTP).Methods("GET")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", adminOnly(http.HandlerFunc(userHandler.List)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", adminOnly(http.HandlerFunc(userHandler.Create)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(userHandler.Get)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(userHandler.Update)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(userHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Inventory (crew can view, admins manage)
	inventoryAPI := r.PathPrefix("/api/inventory").Subrouter()
	inventoryAPI.Use(authMiddleware.Authenticate)
	inventoryAPI.HandleFunc("", adminOrCrew(http.HandlerFunc(inventoryHandler.List)).ServeHTTP).Methods("GET")
	inventoryAPI.HandleFunc("", adminOnly(http.HandlerFunc(inventoryHandler.Create)).ServeHTTP).Methods("POST")
	inventoryAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(inventoryHandler.Update)).ServeHTTP).Methods("PUT")
	inventoryAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(inventoryHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Product requests (crew raise them, admins decide)
	requestsAPI := r.PathPrefix("/api/product-requests").Subrouter()
	requestsAPI.Use(authMiddleware.Authenticate)
	requestsAPI.HandleFunc("", adminOrCrew(http.HandlerFunc(productRequestHandler.List)).ServeHTTP).Methods("GET")
	requestsAPI.HandleFunc("", adminOrCrew(http.HandlerFunc(productRequestHandler.Create)).ServeHTTP).Methods("POST")
	requestsAPI.HandleFunc("/{id}/decide", adminOnly(http.HandlerFunc(productRequestHandler.Decide)).ServeHTTP).Methods("POST")
	requestsAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(productRequestHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Event packages (public listing above, admin writes)
	packagesAPI := r.PathPrefix("/api/packages").Subrouter()
	packagesAPI.Use(authMiddleware.Authenticate)
	packagesAPI.HandleFunc("", adminOnly(http.HandlerFunc(packageHandler.Create)).ServeHTTP).Methods("POST")
	packagesAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(packageHandler.Update)).ServeHTTP).Methods("PUT")
	packagesAPI.HandleFunc("/{id}", adminOnly(http.HandlerFunc(packageHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - System Settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", systemSettingHandler.List).Methods("GET")
	settingsAPI.HandleFunc("/{key}", systemSettingHandler.Get).Methods("GET")
	settingsAPI.HandleFunc("/{key}", adminOnly(http.HandlerFunc(systemSettingHandler.Update)).ServeHTTP).Methods("PUT")

	// Protected API routes - Reports (admin only)
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/invoice/{id}", adminOnly(http.HandlerFunc(reportHandler.Invoice)).ServeHTTP).Methods("GET")
	reportsAPI.HandleFunc("/finance", adminOnly(http.HandlerFunc(reportHandler.FinanceCSV)).ServeHTTP).Methods("GET")

	// Protected API routes - Admin maintenance
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.Authenticate)
	adminAPI.HandleFunc("/cleanup", adminOnly(http.HandlerFunc(adminHandler.RunCleanup)).ServeHTTP).Methods("POST")
	adminAPI.HandleFunc("/backup", adminOnly(http.HandlerFunc(adminHandler.RunBackup)).ServeHTTP).Methods("POST")
	adminAPI.HandleFunc("/backups", adminOnly(http.HandlerFunc(adminHandler.ListBackups)).ServeHTTP).Methods("GET")

	return r
}
