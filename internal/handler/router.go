package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/company-records-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux           *http.ServeMux
	logger        *zap.Logger
	corsOrigins   []string
	deptHandler   *DepartmentHandler
	empHandler    *EmployeeHandler
	healthHandler *HealthHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	healthHandler *HealthHandler,
	corsOrigins []string,
	logger *zap.Logger,
) *Router {
	return &Router{
		mux:           http.NewServeMux(),
		logger:        logger,
		corsOrigins:   corsOrigins,
		deptHandler:   deptHandler,
		empHandler:    empHandler,
		healthHandler: healthHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.registerResources(r.mux)

	// Те же ресурсы под /api, как их вызывает браузерный фронтенд
	api := http.NewServeMux()
	r.registerResources(api)
	r.mux.Handle("/api/", http.StripPrefix("/api", api))

	r.mux.HandleFunc("GET /health", r.healthHandler.Health)
	r.mux.HandleFunc("GET /ping", r.healthHandler.Ping)
	r.mux.HandleFunc("GET /version", r.healthHandler.Version)

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(r.corsOrigins)(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

func (r *Router) registerResources(mux *http.ServeMux) {
	mux.HandleFunc("GET /departments", r.deptHandler.List)
	mux.HandleFunc("POST /departments", r.deptHandler.Create)
	mux.HandleFunc("GET /departments/{id}", r.deptHandler.GetByID)
	mux.HandleFunc("PUT /departments/{id}", r.deptHandler.Update)
	mux.HandleFunc("PATCH /departments/{id}", r.deptHandler.Update)
	mux.HandleFunc("DELETE /departments/{id}", r.deptHandler.Delete)

	mux.HandleFunc("GET /employees", r.empHandler.List)
	mux.HandleFunc("POST /employees", r.empHandler.Create)
	mux.HandleFunc("GET /employees/{id}", r.empHandler.GetByID)
	mux.HandleFunc("PUT /employees/{id}", r.empHandler.Update)
	mux.HandleFunc("PATCH /employees/{id}", r.empHandler.Update)
	mux.HandleFunc("DELETE /employees/{id}", r.empHandler.Delete)
}
