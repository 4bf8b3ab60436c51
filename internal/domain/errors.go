package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Классы ошибок; конкретные ошибки оборачивают один из них
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound      = fmt.Errorf("department %w", ErrNotFound)
	ErrEmployeeNotFound        = fmt.Errorf("employee %w", ErrNotFound)
	ErrDuplicateDepartmentName = fmt.Errorf("%w: department with this name already exists", ErrConflict)
	ErrDuplicateEmpNo          = fmt.Errorf("%w: employee with this emp_no already exists", ErrConflict)
	ErrInvalidDepartment       = fmt.Errorf("%w: department_id does not reference an existing department", ErrValidation)
)

// ValidationError перечисляет нарушенные ограничения по именам полей JSON
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создаёт ошибку с одним полем
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
