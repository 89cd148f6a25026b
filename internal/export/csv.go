// Package export сериализует сотрудников в CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/employee-records/internal/domain"
)

// Header - фиксированный порядок колонок выгрузки
var Header = []string{"Name", "Email", "Department", "Salary", "Status"}

// EmployeeWriter пишет сотрудников построчно.
// Экранирование запятых, кавычек и переводов строк выполняет encoding/csv.
type EmployeeWriter struct {
	w *csv.Writer
}

// NewEmployeeWriter создаёт писатель поверх w
func NewEmployeeWriter(w io.Writer) *EmployeeWriter {
	return &EmployeeWriter{w: csv.NewWriter(w)}
}

// WriteHeader пишет строку заголовка
func (ew *EmployeeWriter) WriteHeader() error {
	if err := ew.w.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	return nil
}

// Write пишет по строке на сотрудника; статус выводится подписью
func (ew *EmployeeWriter) Write(employees []domain.Employee) error {
	for i := range employees {
		emp := &employees[i]
		record := []string{
			emp.Name,
			emp.Email,
			emp.DepartmentName(),
			emp.Salary.StringFixed(2),
			emp.StatusLabel(),
		}
		if err := ew.w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for employee %d: %w", emp.ID, err)
		}
	}
	return nil
}

// Flush сбрасывает буфер и возвращает отложенную ошибку записи
func (ew *EmployeeWriter) Flush() error {
	ew.w.Flush()
	return ew.w.Error()
}
