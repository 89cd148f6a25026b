// Package validation проверяет сырые поля форм и возвращает либо готовую
// запись, либо набор ошибок по полям. Хранилище здесь не используется.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	nameMaxLength  = 100
	emailMaxLength = 254

	salaryDecimalPlaces = 2
	salaryMaxDigits     = 10
)

var (
	validate = validator.New()

	salaryLimit = decimal.New(1, salaryMaxDigits-salaryDecimalPlaces)
)

// Department проверяет форму подразделения.
// При ошибке возвращается domain.FieldErrors и пустая запись.
func Department(form dto.DepartmentForm) (domain.Department, error) {
	errs := domain.FieldErrors{}

	name := strings.TrimSpace(form.Name)
	checkText(errs, "name", name, nameMaxLength, "Department name cannot be empty")

	if err := errs.ErrOrNil(); err != nil {
		return domain.Department{}, err
	}
	return domain.Department{Name: name}, nil
}

// Employee проверяет форму сотрудника.
// Формат email не проверяется: уникальность и формат остаются за хранилищем.
func Employee(form dto.EmployeeForm) (domain.Employee, error) {
	errs := domain.FieldErrors{}

	name := strings.TrimSpace(form.Name)
	checkText(errs, "name", name, nameMaxLength, "Employee name cannot be empty")

	email := strings.TrimSpace(form.Email)
	checkText(errs, "email", email, emailMaxLength, "Email cannot be empty")

	departmentID := parseDepartmentID(errs, form.DepartmentID)
	salary := parseSalary(errs, form.Salary)

	if err := errs.ErrOrNil(); err != nil {
		return domain.Employee{}, err
	}

	return domain.Employee{
		Name:         name,
		Email:        email,
		DepartmentID: departmentID,
		Salary:       salary,
		Status:       parseStatus(form.Status),
	}, nil
}

func checkText(errs domain.FieldErrors, field, value string, maxLength int, emptyMessage string) {
	err := validate.Var(value, fmt.Sprintf("required,max=%d", maxLength))
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		errs.Add(field, domain.CodeInvalidValue, "Enter a valid value")
		return
	}

	switch verrs[0].Tag() {
	case "required":
		errs.Add(field, domain.CodeEmptyField, emptyMessage)
	case "max":
		errs.Add(field, domain.CodeTooLong,
			fmt.Sprintf("Ensure this value has at most %d characters", maxLength))
	default:
		errs.Add(field, domain.CodeInvalidValue, "Enter a valid value")
	}
}

func parseDepartmentID(errs domain.FieldErrors, raw string) int64 {
	raw = strings.TrimSpace(raw)
	if validate.Var(raw, "required") != nil {
		errs.Add("department", domain.CodeEmptyField, "Department is required")
		return 0
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		errs.Add("department", domain.CodeInvalidValue, "Select a valid department")
		return 0
	}
	return id
}

func parseSalary(errs domain.FieldErrors, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if validate.Var(raw, "required") != nil {
		errs.Add("salary", domain.CodeEmptyField, "Salary is required")
		return decimal.Zero
	}

	salary, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add("salary", domain.CodeInvalidValue, "Enter a number")
		return decimal.Zero
	}

	if salary.IsNegative() {
		errs.Add("salary", domain.CodeNegativeValue, "Salary cannot be negative")
	}
	if !salary.Equal(salary.Round(salaryDecimalPlaces)) {
		errs.Add("salary", domain.CodeInvalidValue,
			fmt.Sprintf("Ensure that there are no more than %d decimal places", salaryDecimalPlaces))
	}
	if salary.Abs().GreaterThanOrEqual(salaryLimit) {
		errs.Add("salary", domain.CodeInvalidValue,
			fmt.Sprintf("Ensure that there are no more than %d digits in total", salaryMaxDigits))
	}

	return salary.Round(salaryDecimalPlaces)
}

// parseStatus трактует значение чекбокса; отсутствие значения - неактивен
func parseStatus(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "active":
		return true
	default:
		return false
	}
}
