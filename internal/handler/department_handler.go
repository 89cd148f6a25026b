package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/employee-records/internal/service"
	"github.com/employee-records/internal/web"
)

const departmentListPath = "/departments/"

type DepartmentHandler struct {
	responder
	deptService service.DepartmentService
}

func NewDepartmentHandler(
	deptService service.DepartmentService,
	renderer *web.Renderer,
	logger *slog.Logger,
) *DepartmentHandler {
	return &DepartmentHandler{
		responder:   responder{renderer: renderer, logger: logger},
		deptService: deptService,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.deptService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, web.PageDepartmentList, "Departments", dto.DepartmentListView{
		Departments: departments,
	})
}

func (h *DepartmentHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageDepartmentForm, "New department", dto.DepartmentFormView{})
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	form := dto.DepartmentFormFromValues(r.PostForm)
	if _, err := h.deptService.Create(r.Context(), &form); err != nil {
		if fieldErrs, ok := asFieldErrors(err); ok {
			h.render(w, r, http.StatusOK, web.PageDepartmentForm, "New department", dto.DepartmentFormView{
				Form:   form,
				Errors: fieldErrs,
			})
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	h.redirect(w, r, departmentListPath, "Department created successfully!")
}

func (h *DepartmentHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "department")
	if !ok {
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, web.PageDepartmentForm, "Edit department", dto.DepartmentFormView{
		Department: dept,
		Form:       dto.DepartmentFormFromModel(dept),
	})
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r, "department")
	if !ok {
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	form := dto.DepartmentFormFromValues(r.PostForm)
	if _, err := h.deptService.Update(r.Context(), id, &form); err != nil {
		if fieldErrs, ok := asFieldErrors(err); ok {
			h.render(w, r, http.StatusOK, web.PageDepartmentForm, "Edit department", dto.DepartmentFormView{
				Department: &domain.Department{ID: id},
				Form:       form,
				Errors:     fieldErrs,
			})
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	h.redirect(w, r, departmentListPath, "Department updated successfully!")
}

// ConfirmDelete показывает подтверждение и ничего не удаляет
func (h *DepartmentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, false)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, true)
}

func (h *DepartmentHandler) delete(w http.ResponseWriter, r *http.Request, confirmed bool) {
	id, ok := h.extractID(w, r, "department")
	if !ok {
		return
	}

	dept, action, err := h.deptService.Delete(r.Context(), id, confirmed)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	switch action {
	case domain.DeleteActionConfirm:
		h.render(w, r, http.StatusOK, web.PageDepartmentConfirm, "Delete department", dto.DepartmentDeleteView{
			Department: dept,
		})
	case domain.DeleteActionExecute:
		h.logger.Info("department deleted", slog.Int64("department_id", id))
		h.redirect(w, r, departmentListPath, "Department deleted successfully!")
	}
}
