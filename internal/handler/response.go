package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/employee-records/internal/middleware"
	"github.com/employee-records/internal/web"
)

// responder - общие для обработчиков отрисовка, редиректы и ошибки
type responder struct {
	renderer *web.Renderer
	logger   *slog.Logger
}

// render отрисовывает страницу в буфер, чтобы ошибка шаблона не оставила половину ответа
func (p *responder) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	page := web.Page{
		Title: title,
		Flash: popFlash(w, r),
		Data:  data,
	}

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, name, page); err != nil {
		p.logger.Error("failed to render page",
			slog.String("page", name),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		p.logger.Error("failed to write response", slog.Any("error", err))
	}
}

func (p *responder) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	p.render(w, r, status, web.PageError, http.StatusText(status), dto.ErrorView{
		Status:  status,
		Message: message,
	})
}

// redirect отправляет на страницу списка с одноразовым уведомлением
func (p *responder) redirect(w http.ResponseWriter, r *http.Request, location, notice string) {
	if notice != "" {
		setFlash(w, notice)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (p *responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsNotFound(err):
		p.renderError(w, r, http.StatusNotFound, err.Error())
	default:
		p.logger.Error("internal error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err),
		)
		p.renderError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// extractID читает идентификатор из пути; при ошибке сам отвечает 400
func (p *responder) extractID(w http.ResponseWriter, r *http.Request, entity string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		p.renderError(w, r, http.StatusBadRequest, "invalid "+entity+" id")
		return 0, false
	}
	return id, true
}

// parseForm разбирает тело POST-запроса; при ошибке сам отвечает 400
func (p *responder) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		p.renderError(w, r, http.StatusBadRequest, "invalid form data")
		return false
	}
	return true
}

// asFieldErrors выделяет ошибки полей формы из ошибки сервиса
func asFieldErrors(err error) (domain.FieldErrors, bool) {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}
