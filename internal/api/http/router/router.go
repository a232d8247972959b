// Package router wires HTTP handlers and middleware onto a chi mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/nutrilog-server/internal/api/http/handler"
	"github.com/dtroode/nutrilog-server/internal/api/http/middleware"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/metrics"
)

// Router represents the HTTP router of the service.
type Router struct {
	userService   handler.UserService
	mealService   handler.MealService
	statusService handler.StatusService
	healthService handler.HealthService
	metrics       *metrics.Metrics
	version       string
	logger        *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	userService handler.UserService,
	mealService handler.MealService,
	statusService handler.StatusService,
	healthService handler.HealthService,
	metrics *metrics.Metrics,
	version string,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:   userService,
		mealService:   mealService,
		statusService: statusService,
		healthService: healthService,
		metrics:       metrics,
		version:       version,
		logger:        logger,
	}
}

// Register builds the mux with the middleware chain and all routes.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	mux.Use(
		chimw.RequestID,
		middleware.NewMetrics(r.metrics).Handle,
		middleware.NewLogging(r.logger).Handle,
		middleware.NewRecovery(r.logger).Handle,
	)

	mux.NotFound(notFound)
	mux.MethodNotAllowed(methodNotAllowed)

	info := handler.NewInfo(r.healthService, r.version, r.logger)
	mux.Get("/", info.Root)
	mux.Get("/health", info.Health)
	if r.metrics != nil {
		mux.Method(http.MethodGet, "/metrics", r.metrics.Handler())
	}

	r.registerUserRoutes(mux)
	r.registerMealRoutes(mux)
	r.registerStatusRoutes(mux)

	return mux
}

func (r *Router) registerUserRoutes(mux chi.Router) {
	h := handler.NewUser(r.userService, r.logger)
	mux.Post("/register", h.Register)
}

func (r *Router) registerMealRoutes(mux chi.Router) {
	h := handler.NewMeal(r.mealService, r.logger)
	mux.Post("/log_meals", h.LogMeal)
	mux.Post("/webhook", h.Webhook)
	mux.Get("/meals/{user}", h.ListMeals)
}

func (r *Router) registerStatusRoutes(mux chi.Router) {
	h := handler.NewStatus(r.statusService, r.logger)
	mux.Get("/status/{user}", h.GetStatus)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not_found", "route not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}

func writeError(w http.ResponseWriter, status int, kind, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"status":"error","error":"` + kind + `","detail":"` + detail + `"}` + "\n"))
}
