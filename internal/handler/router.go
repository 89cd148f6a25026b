package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-records/internal/middleware"
	"github.com/employee-records/internal/web"
)

// Router настраивает маршруты приложения
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	pages       responder
	deptHandler *DepartmentHandler
	empHandler  *EmployeeHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	renderer *web.Renderer,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		pages:       responder{renderer: renderer, logger: logger},
		deptHandler: deptHandler,
		empHandler:  empHandler,
	}
}

// Setup настраивает все маршруты.
// GET только показывает форму или подтверждение, изменения выполняет POST.
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("GET /{$}", r.home)

	// Подразделения
	r.mux.HandleFunc("GET /departments/{$}", r.deptHandler.List)
	r.mux.HandleFunc("GET /departments/create/{$}", r.deptHandler.CreateForm)
	r.mux.HandleFunc("POST /departments/create/{$}", r.deptHandler.Create)
	r.mux.HandleFunc("GET /departments/{id}/update/{$}", r.deptHandler.UpdateForm)
	r.mux.HandleFunc("POST /departments/{id}/update/{$}", r.deptHandler.Update)
	r.mux.HandleFunc("GET /departments/{id}/delete/{$}", r.deptHandler.ConfirmDelete)
	r.mux.HandleFunc("POST /departments/{id}/delete/{$}", r.deptHandler.Delete)

	// Сотрудники
	r.mux.HandleFunc("GET /employees/{$}", r.empHandler.List)
	r.mux.HandleFunc("GET /employees/create/{$}", r.empHandler.CreateForm)
	r.mux.HandleFunc("POST /employees/create/{$}", r.empHandler.Create)
	r.mux.HandleFunc("GET /employees/{id}/update/{$}", r.empHandler.UpdateForm)
	r.mux.HandleFunc("POST /employees/{id}/update/{$}", r.empHandler.Update)
	r.mux.HandleFunc("GET /employees/{id}/delete/{$}", r.empHandler.ConfirmDelete)
	r.mux.HandleFunc("POST /employees/{id}/delete/{$}", r.empHandler.Delete)
	r.mux.HandleFunc("GET /employees/export-csv/{$}", r.empHandler.ExportCSV)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType("text/html; charset=utf-8")(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

func (r *Router) home(w http.ResponseWriter, req *http.Request) {
	r.pages.render(w, req, http.StatusOK, web.PageHome, "Home", nil)
}
