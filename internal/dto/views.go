package dto

import (
	"strconv"

	"github.com/employee-records/internal/domain"
)

// DepartmentListView - данные страницы списка подразделений
type DepartmentListView struct {
	Departments []domain.Department
}

// DepartmentFormView - данные формы подразделения.
// Department равен nil при создании.
type DepartmentFormView struct {
	Department *domain.Department
	Form       DepartmentForm
	Errors     domain.FieldErrors
}

// DepartmentDeleteView - страница подтверждения удаления подразделения
type DepartmentDeleteView struct {
	Department *domain.Department
}

// EmployeeListView - данные страницы списка сотрудников
type EmployeeListView struct {
	Employees        []domain.Employee
	Departments      []domain.Department
	Query            string
	StatusFilter     string
	DepartmentFilter string
	// Filtered - задан хотя бы один критерий
	Filtered bool
}

// EmployeeFormView - данные формы сотрудника
type EmployeeFormView struct {
	Employee    *domain.Employee
	Form        EmployeeForm
	Departments []domain.Department
	Errors      domain.FieldErrors
}

// IsSelected сообщает, выбрано ли подразделение в форме
func (v EmployeeFormView) IsSelected(id int64) bool {
	return v.Form.DepartmentID == formatID(id)
}

// EmployeeDeleteView - страница подтверждения удаления сотрудника
type EmployeeDeleteView struct {
	Employee *domain.Employee
}

// ErrorView - страница ошибки
type ErrorView struct {
	Status  int
	Message string
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
