package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Имена страниц
const (
	PageHome              = "home"
	PageDepartmentList    = "department_list"
	PageDepartmentForm    = "department_form"
	PageDepartmentConfirm = "department_confirm_delete"
	PageEmployeeList      = "employee_list"
	PageEmployeeForm      = "employee_form"
	PageEmployeeConfirm   = "employee_confirm_delete"
	PageError             = "error"
)

var pageNames = []string{
	PageHome,
	PageDepartmentList,
	PageDepartmentForm,
	PageDepartmentConfirm,
	PageEmployeeList,
	PageEmployeeForm,
	PageEmployeeConfirm,
	PageError,
}

// Page - общая обёртка view-модели для шаблона layout
type Page struct {
	Title string
	Flash string
	Data  any
}

// Renderer хранит разобранные шаблоны страниц
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render выполняет шаблон страницы
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", page)
}
