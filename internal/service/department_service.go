package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/company-records-api/internal/domain"
	"github.com/company-records-api/internal/dto"
	"github.com/company-records-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	validate *validator.Validate
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		validate: newValidator(),
	}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.List(ctx)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	dept := &domain.Department{
		Name: req.Name,
		Note: req.Note,
	}

	// Уникальность имени проверяет ограничение БД
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}

	return s.deptRepo.Update(ctx, id, func(dept *domain.Department) error {
		applyDepartmentUpdate(dept, req)
		return nil
	})
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.deptRepo.Delete(ctx, id)
}

func (s *departmentService) validateUpdate(req *dto.UpdateDepartmentRequest) error {
	fields := fieldErrors{}
	checkRequired(s.validate, fields, "name", req.Name, "min=1,max=50")
	checkNullable(s.validate, fields, "note", req.Note, "max=200")
	return fields.err()
}

// applyDepartmentUpdate переносит только переданные поля; null в note очищает её
func applyDepartmentUpdate(dept *domain.Department, req *dto.UpdateDepartmentRequest) {
	if req.Name.Set {
		dept.Name = *req.Name.Value
	}
	if req.Note.Set {
		dept.Note = req.Note.Value
	}
}
