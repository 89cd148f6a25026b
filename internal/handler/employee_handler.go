package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/employee-records/internal/middleware"
	"github.com/employee-records/internal/service"
	"github.com/employee-records/internal/web"
)

const (
	employeeListPath = "/employees/"
	exportFilename   = "employees.csv"
)

type EmployeeHandler struct {
	responder
	empService  service.EmployeeService
	deptService service.DepartmentService
}

func NewEmployeeHandler(
	empService service.EmployeeService,
	deptService service.DepartmentService,
	renderer *web.Renderer,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		responder:   responder{renderer: renderer, logger: logger},
		empService:  empService,
		deptService: deptService,
	}
}

// List показывает сотрудников с учётом параметров q, status и department
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.EmployeeListQueryFromValues(r.URL.Query())

	view, err := h.empService.List(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, web.PageEmployeeList, "Employees", view)
}

func (h *EmployeeHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, nil, dto.NewEmployeeFormDefaults(), nil)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	form := dto.EmployeeFormFromValues(r.PostForm)
	if _, err := h.empService.Create(r.Context(), &form); err != nil {
		if fieldErrs, ok := asFieldErrors(err); ok {
			h.renderForm(w, r, nil, form, fieldErrs)
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	h.redirect(w, r, employeeListPath, "Employee created successfully!")
}

func (h *EmployeeHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.renderForm(w, r, emp, dto.EmployeeFormFromModel(emp), nil)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	form := dto.EmployeeFormFromValues(r.PostForm)
	if _, err := h.empService.Update(r.Context(), id, &form); err != nil {
		if fieldErrs, ok := asFieldErrors(err); ok {
			h.renderForm(w, r, &domain.Employee{ID: id}, form, fieldErrs)
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	h.redirect(w, r, employeeListPath, "Employee updated successfully!")
}

// ConfirmDelete показывает подтверждение и ничего не удаляет
func (h *EmployeeHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, false)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, true)
}

func (h *EmployeeHandler) delete(w http.ResponseWriter, r *http.Request, confirmed bool) {
	id, ok := h.extractID(w, r, "employee")
	if !ok {
		return
	}

	emp, action, err := h.empService.Delete(r.Context(), id, confirmed)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	switch action {
	case domain.DeleteActionConfirm:
		h.render(w, r, http.StatusOK, web.PageEmployeeConfirm, "Delete employee", dto.EmployeeDeleteView{
			Employee: emp,
		})
	case domain.DeleteActionExecute:
		h.logger.Info("employee deleted", slog.Int64("employee_id", id))
		h.redirect(w, r, employeeListPath, "Employee deleted successfully!")
	}
}

// ExportCSV отдаёт всех сотрудников файлом; фильтры списка не применяются
func (h *EmployeeHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)

	out := &trackingWriter{w: w}
	err := h.empService.Export(r.Context(), out)
	if err == nil {
		return
	}

	// Пока клиенту ничего не ушло, вместо файла можно отдать страницу ошибки
	if !out.written {
		w.Header().Del("Content-Disposition")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.Error("employee export interrupted",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.Any("error", err),
	)
}

// trackingWriter запоминает, были ли записаны байты ответа
type trackingWriter struct {
	w       io.Writer
	written bool
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		t.written = true
	}
	return t.w.Write(p)
}

func (h *EmployeeHandler) renderForm(w http.ResponseWriter, r *http.Request, emp *domain.Employee, form dto.EmployeeForm, errs domain.FieldErrors) {
	departments, err := h.deptService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	title := "New employee"
	if emp != nil {
		title = "Edit employee"
	}

	h.render(w, r, http.StatusOK, web.PageEmployeeForm, title, dto.EmployeeFormView{
		Employee:    emp,
		Form:        form,
		Departments: departments,
		Errors:      errs,
	})
}
