package dto

import (
	"time"
)

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=50"`
	Note *string `json:"note" validate:"omitempty,max=200"`
}

// UpdateDepartmentRequest - частичное обновление подразделения
type UpdateDepartmentRequest struct {
	Name Optional[string] `json:"name"`
	Note Optional[string] `json:"note"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=50"`
	EmpNo        string  `json:"emp_no" validate:"required,min=1,max=20"`
	Gender       string  `json:"gender" validate:"required,oneof=M F"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Memo         *string `json:"memo" validate:"omitempty,max=200"`
	DepartmentID *int64  `json:"department_id"`
}

// UpdateEmployeeRequest - частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	Name         Optional[string] `json:"name"`
	EmpNo        Optional[string] `json:"emp_no"`
	Gender       Optional[string] `json:"gender"`
	Phone        Optional[string] `json:"phone"`
	Memo         Optional[string] `json:"memo"`
	DepartmentID Optional[int64]  `json:"department_id"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	EmpNo        string              `json:"emp_no"`
	Gender       string              `json:"gender"`
	Phone        *string             `json:"phone"`
	Memo         *string             `json:"memo"`
	DepartmentID *int64              `json:"department_id"`
	Department   *DepartmentResponse `json:"department"`
	CreatedAt    time.Time           `json:"created_at"`
}

// OKResponse - ответ на удаление и /health
type OKResponse struct {
	OK bool `json:"ok"`
}

// PongResponse - ответ на /ping
type PongResponse struct {
	Pong bool `json:"pong"`
}

// VersionResponse - ответ на /version
type VersionResponse struct {
	App     string `json:"app"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
