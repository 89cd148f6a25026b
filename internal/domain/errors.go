package domain

import (
	"errors"
	"sort"
	"strings"
)

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDuplicateEmployeeEmail  = errors.New("employee with this email already exists")
)

// ErrorCode - вид ошибки поля формы
type ErrorCode string

const (
	CodeEmptyField         ErrorCode = "EmptyField"
	CodeNegativeValue      ErrorCode = "NegativeValue"
	CodeInvalidValue       ErrorCode = "InvalidValue"
	CodeTooLong            ErrorCode = "TooLong"
	CodeUniquenessConflict ErrorCode = "UniquenessConflict"
)

// FieldError - ошибка конкретного поля
type FieldError struct {
	Code    ErrorCode
	Message string
}

// FieldErrors - ошибки валидации по именам полей
type FieldErrors map[string][]FieldError

// Add добавляет ошибку к полю
func (fe FieldErrors) Add(field string, code ErrorCode, message string) {
	fe[field] = append(fe[field], FieldError{Code: code, Message: message})
}

// Has сообщает, есть ли у поля ошибка с указанным кодом
func (fe FieldErrors) Has(field string, code ErrorCode) bool {
	for _, e := range fe[field] {
		if e.Code == code {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, e := range fe[field] {
			parts = append(parts, field+": "+e.Message)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrOrNil возвращает nil для пустого набора ошибок
func (fe FieldErrors) ErrOrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// IsNotFound сообщает, относится ли ошибка к классу NotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDepartmentNotFound) || errors.Is(err, ErrEmployeeNotFound)
}
