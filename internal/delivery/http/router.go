package http

import (
	"net/http"

	"medshift-scheduler/internal/delivery/http/handler"
	"medshift-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	employeeHandler       *handler.EmployeeHandler
	departmentHandler     *handler.DepartmentHandler
	positionHandler       *handler.PositionHandler
	locationHandler       *handler.LocationHandler
	shiftHandler          *handler.ShiftHandler
	unavailabilityHandler *handler.UnavailabilityHandler
	templateHandler       *handler.ShiftTemplateHandler
	swapHandler           *handler.ShiftSwapHandler
	statsHandler          *handler.StatsHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	departmentHandler *handler.DepartmentHandler,
	positionHandler *handler.PositionHandler,
	locationHandler *handler.LocationHandler,
	shiftHandler *handler.ShiftHandler,
	unavailabilityHandler *handler.UnavailabilityHandler,
	templateHandler *handler.ShiftTemplateHandler,
	swapHandler *handler.ShiftSwapHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		employeeHandler:       employeeHandler,
		departmentHandler:     departmentHandler,
		positionHandler:       positionHandler,
		locationHandler:       locationHandler,
		shiftHandler:          shiftHandler,
		unavailabilityHandler: unavailabilityHandler,
		templateHandler:       templateHandler,
		swapHandler:           swapHandler,
		statsHandler:          statsHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Account creation is restricted to administrators so the role on the
	// request cannot be used to self-provision a privileged account.
	authAdmin := api.PathPrefix("/auth").Subrouter()
	authAdmin.Use(r.authMiddleware.Authenticate)
	authAdmin.Use(middleware.RequireAdmin)
	authAdmin.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	// Staff routes (any authenticated user)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.HandleFunc("/shifts", r.shiftHandler.GetAllShifts).Methods(http.MethodGet)
	staff.HandleFunc("/shifts/{id}", r.shiftHandler.GetShift).Methods(http.MethodGet)
	staff.HandleFunc("/unavailabilities", r.unavailabilityHandler.GetAllUnavailabilities).Methods(http.MethodGet)
	staff.HandleFunc("/unavailabilities", r.unavailabilityHandler.CreateUnavailability).Methods(http.MethodPost)
	staff.HandleFunc("/unavailabilities/{id}", r.unavailabilityHandler.GetUnavailability).Methods(http.MethodGet)
	staff.HandleFunc("/unavailabilities/{id}", r.unavailabilityHandler.UpdateUnavailability).Methods(http.MethodPut)
	staff.HandleFunc("/unavailabilities/{id}", r.unavailabilityHandler.DeleteUnavailability).Methods(http.MethodDelete)
	staff.HandleFunc("/swaps", r.swapHandler.CreateSwap).Methods(http.MethodPost)
	staff.HandleFunc("/swaps/mine", r.swapHandler.GetMySwaps).Methods(http.MethodGet)
	// Registered before the {id} wildcard so "pending" is not parsed as an ID.
	staff.Handle("/swaps/pending", middleware.RequireAdminOrManager(http.HandlerFunc(r.swapHandler.GetPendingSwaps))).Methods(http.MethodGet)
	staff.HandleFunc("/swaps/{id}", r.swapHandler.GetSwap).Methods(http.MethodGet)
	staff.HandleFunc("/swaps/{id}/respond", r.swapHandler.RespondSwap).Methods(http.MethodPost)

	// Management routes (admin or manager)
	manage := api.PathPrefix("").Subrouter()
	manage.Use(r.authMiddleware.Authenticate)
	manage.Use(middleware.RequireAdminOrManager)

	// Employee management
	manage.HandleFunc("/employees", r.employeeHandler.CreateEmployee).Methods(http.MethodPost)
	manage.HandleFunc("/employees", r.employeeHandler.GetAllEmployees).Methods(http.MethodGet)
	manage.HandleFunc("/employees/{id}", r.employeeHandler.GetEmployee).Methods(http.MethodGet)
	manage.HandleFunc("/employees/{id}", r.employeeHandler.UpdateEmployee).Methods(http.MethodPut)
	manage.HandleFunc("/employees/{id}/deactivate", r.employeeHandler.DeactivateEmployee).Methods(http.MethodPost)
	manage.HandleFunc("/employees/{id}/reactivate", r.employeeHandler.ReactivateEmployee).Methods(http.MethodPost)

	// Department management
	manage.HandleFunc("/departments", r.departmentHandler.CreateDepartment).Methods(http.MethodPost)
	manage.HandleFunc("/departments", r.departmentHandler.GetAllDepartments).Methods(http.MethodGet)
	manage.HandleFunc("/departments/{id}", r.departmentHandler.GetDepartment).Methods(http.MethodGet)
	manage.HandleFunc("/departments/{id}", r.departmentHandler.UpdateDepartment).Methods(http.MethodPut)
	manage.HandleFunc("/departments/{id}", r.departmentHandler.DeleteDepartment).Methods(http.MethodDelete)

	// Position management
	manage.HandleFunc("/positions", r.positionHandler.CreatePosition).Methods(http.MethodPost)
	manage.HandleFunc("/positions", r.positionHandler.GetAllPositions).Methods(http.MethodGet)
	manage.HandleFunc("/positions/{id}", r.positionHandler.GetPosition).Methods(http.MethodGet)
	manage.HandleFunc("/positions/{id}", r.positionHandler.UpdatePosition).Methods(http.MethodPut)
	manage.HandleFunc("/positions/{id}", r.positionHandler.DeletePosition).Methods(http.MethodDelete)

	// Location management
	manage.HandleFunc("/locations", r.locationHandler.CreateLocation).Methods(http.MethodPost)
	manage.HandleFunc("/locations", r.locationHandler.GetAllLocations).Methods(http.MethodGet)
	manage.HandleFunc("/locations/{id}", r.locationHandler.GetLocation).Methods(http.MethodGet)
	manage.HandleFunc("/locations/{id}", r.locationHandler.UpdateLocation).Methods(http.MethodPut)
	manage.HandleFunc("/locations/{id}/deactivate", r.locationHandler.DeactivateLocation).Methods(http.MethodPost)

	// Shift management
	manage.HandleFunc("/shifts", r.shiftHandler.CreateShift).Methods(http.MethodPost)
	manage.HandleFunc("/shifts/{id}", r.shiftHandler.UpdateShift).Methods(http.MethodPut)
	manage.HandleFunc("/shifts/{id}/status", r.shiftHandler.UpdateShiftStatus).Methods(http.MethodPatch)
	manage.HandleFunc("/shifts/{id}/assign", r.shiftHandler.AssignShift).Methods(http.MethodPost)
	manage.HandleFunc("/shifts/{id}", r.shiftHandler.DeleteShift).Methods(http.MethodDelete)

	// Shift template management
	manage.HandleFunc("/shift-templates", r.templateHandler.CreateTemplate).Methods(http.MethodPost)
	manage.HandleFunc("/shift-templates", r.templateHandler.GetAllTemplates).Methods(http.MethodGet)
	manage.HandleFunc("/shift-templates/{id}", r.templateHandler.GetTemplate).Methods(http.MethodGet)
	manage.HandleFunc("/shift-templates/{id}", r.templateHandler.UpdateTemplate).Methods(http.MethodPut)
	manage.HandleFunc("/shift-templates/{id}", r.templateHandler.DeleteTemplate).Methods(http.MethodDelete)
	manage.HandleFunc("/shift-templates/{id}/generate", r.templateHandler.GenerateShifts).Methods(http.MethodPost)

	// Swap review
	manage.HandleFunc("/swaps/{id}/review", r.swapHandler.ReviewSwap).Methods(http.MethodPost)

	// Dashboard stats
	manage.HandleFunc("/stats/dashboard", r.statsHandler.GetDashboardStats).Methods(http.MethodGet)

	// Admin routes (admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/employees/{id}", r.employeeHandler.DeleteEmployee).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
