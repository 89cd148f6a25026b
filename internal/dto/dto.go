package dto

import (
	"net/url"

	"github.com/employee-records/internal/domain"
)

// DepartmentForm - сырые поля формы подразделения
type DepartmentForm struct {
	Name string
}

// EmployeeForm - сырые поля формы сотрудника.
// Status хранит значение чекбокса: пустая строка означает "не отмечен".
type EmployeeForm struct {
	Name         string
	Email        string
	DepartmentID string
	Salary       string
	Status       string
}

// EmployeeListQuery - параметры фильтрации списка сотрудников
type EmployeeListQuery struct {
	Query      string
	Status     string
	Department string
}

// DepartmentFormFromValues читает форму подразделения из POST-данных
func DepartmentFormFromValues(values url.Values) DepartmentForm {
	return DepartmentForm{Name: values.Get("name")}
}

// EmployeeFormFromValues читает форму сотрудника из POST-данных
func EmployeeFormFromValues(values url.Values) EmployeeForm {
	return EmployeeForm{
		Name:         values.Get("name"),
		Email:        values.Get("email"),
		DepartmentID: values.Get("department"),
		Salary:       values.Get("salary"),
		Status:       values.Get("status"),
	}
}

// EmployeeListQueryFromValues читает параметры q, status, department
func EmployeeListQueryFromValues(values url.Values) EmployeeListQuery {
	return EmployeeListQuery{
		Query:      values.Get("q"),
		Status:     values.Get("status"),
		Department: values.Get("department"),
	}
}

// Filter переводит параметры запроса в критерии отбора
func (q EmployeeListQuery) Filter() domain.EmployeeFilter {
	return domain.NewEmployeeFilter(q.Query, q.Status, q.Department)
}

// NewEmployeeFormDefaults - начальное состояние формы создания: сотрудник активен
func NewEmployeeFormDefaults() EmployeeForm {
	return EmployeeForm{Status: "on"}
}

// DepartmentFormFromModel заполняет форму значениями существующего подразделения
func DepartmentFormFromModel(dept *domain.Department) DepartmentForm {
	return DepartmentForm{Name: dept.Name}
}

// EmployeeFormFromModel заполняет форму значениями существующего сотрудника
func EmployeeFormFromModel(emp *domain.Employee) EmployeeForm {
	form := EmployeeForm{
		Name:         emp.Name,
		Email:        emp.Email,
		DepartmentID: formatID(emp.DepartmentID),
		Salary:       emp.Salary.StringFixed(2),
	}
	if emp.Status {
		form.Status = "on"
	}
	return form
}
