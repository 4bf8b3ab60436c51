package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/company-records-api/internal/domain"
	"github.com/company-records-api/internal/dto"
	"github.com/company-records-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	validate *validator.Validate
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		validate: newValidator(),
	}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:         req.Name,
		EmpNo:        req.EmpNo,
		Gender:       domain.Gender(req.Gender),
		Phone:        req.Phone,
		Memo:         req.Memo,
		DepartmentID: req.DepartmentID,
	}

	// Существование подразделения и уникальность emp_no проверяются при записи
	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}

	return s.empRepo.Update(ctx, id, func(emp *domain.Employee) error {
		applyEmployeeUpdate(emp, req)
		return nil
	})
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

func (s *employeeService) validateUpdate(req *dto.UpdateEmployeeRequest) error {
	fields := fieldErrors{}
	checkRequired(s.validate, fields, "name", req.Name, "min=1,max=50")
	checkRequired(s.validate, fields, "emp_no", req.EmpNo, "min=1,max=20")
	checkRequired(s.validate, fields, "gender", req.Gender, "required,oneof=M F")
	checkNullable(s.validate, fields, "phone", req.Phone, "max=30")
	checkNullable(s.validate, fields, "memo", req.Memo, "max=200")
	return fields.err()
}

// applyEmployeeUpdate переносит только переданные поля.
// Обязательные поля к этому моменту уже проверены на null.
func applyEmployeeUpdate(emp *domain.Employee, req *dto.UpdateEmployeeRequest) {
	if req.Name.Set {
		emp.Name = *req.Name.Value
	}
	if req.EmpNo.Set {
		emp.EmpNo = *req.EmpNo.Value
	}
	if req.Gender.Set {
		emp.Gender = domain.Gender(*req.Gender.Value)
	}
	if req.Phone.Set {
		emp.Phone = req.Phone.Value
	}
	if req.Memo.Set {
		emp.Memo = req.Memo.Value
	}
	if req.DepartmentID.Set {
		emp.DepartmentID = req.DepartmentID.Value
	}
}
