package domain

// EmployeeFilter - критерии отбора сотрудников.
// Пустые критерии не сужают выборку.
type EmployeeFilter struct {
	Query      string
	Status     *bool
	Department string
}

// NewEmployeeFilter собирает фильтр из параметров запроса списка.
// Query не обрезается: строка из пробелов ищется как есть.
// "Active" означает активных, любое другое непустое значение - неактивных.
func NewEmployeeFilter(query, status, department string) EmployeeFilter {
	filter := EmployeeFilter{
		Query:      query,
		Department: department,
	}
	if status != "" {
		active := status == StatusActive
		filter.Status = &active
	}
	return filter
}

// IsEmpty сообщает, что ни один критерий не задан
func (f EmployeeFilter) IsEmpty() bool {
	return f.Query == "" && f.Status == nil && f.Department == ""
}
