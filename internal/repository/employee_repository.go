package repository

import (
	"context"

	"github.com/company-records-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками.
// Возвращаемые сотрудники всегда содержат актуальное подразделение, если оно существует.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, id int64, apply func(*domain.Employee) error) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	db := r.db.WithContext(ctx)
	if err := db.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, translateError(err, domain.ErrDuplicateEmpNo)
	}
	if err := resolveDepartments(db, employees); err != nil {
		return nil, translateError(err, domain.ErrDuplicateEmpNo)
	}
	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	if err := getEmployee(r.db.WithContext(ctx), id, &emp); err != nil {
		return nil, translateError(err, domain.ErrDuplicateEmpNo)
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if emp.DepartmentID != nil {
			if err := ensureDepartmentExists(tx, *emp.DepartmentID); err != nil {
				return err
			}
		}
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		return getEmployee(tx, emp.ID, emp)
	})
	return translateError(err, domain.ErrDuplicateEmpNo)
}

// Update проверяет ссылку на подразделение, только если apply её изменил:
// уже осиротевшая ссылка не мешает обновлять остальные поля.
func (r *employeeRepository) Update(ctx context.Context, id int64, apply func(*domain.Employee) error) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&emp, id).Error; err != nil {
			return notFound(err, domain.ErrEmployeeNotFound)
		}

		before := emp.DepartmentID
		if err := apply(&emp); err != nil {
			return err
		}
		if after := emp.DepartmentID; after != nil && (before == nil || *before != *after) {
			if err := ensureDepartmentExists(tx, *after); err != nil {
				return err
			}
		}

		if err := tx.Save(&emp).Error; err != nil {
			return err
		}
		return getEmployee(tx, id, &emp)
	})
	if err != nil {
		return nil, translateError(err, domain.ErrDuplicateEmpNo)
	}
	return &emp, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp domain.Employee
		if err := tx.First(&emp, id).Error; err != nil {
			return notFound(err, domain.ErrEmployeeNotFound)
		}
		return tx.Delete(&domain.Employee{}, id).Error
	})
	return translateError(err, domain.ErrDuplicateEmpNo)
}

// getEmployee читает сотрудника и подгружает его подразделение
func getEmployee(db *gorm.DB, id int64, emp *domain.Employee) error {
	*emp = domain.Employee{}
	if err := db.First(emp, id).Error; err != nil {
		return notFound(err, domain.ErrEmployeeNotFound)
	}

	employees := []domain.Employee{*emp}
	if err := resolveDepartments(db, employees); err != nil {
		return err
	}
	*emp = employees[0]
	return nil
}

// resolveDepartments заполняет Department одним запросом по всем department_id.
// Отсутствующее подразделение не ошибка: Department остаётся nil.
func resolveDepartments(db *gorm.DB, employees []domain.Employee) error {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, emp := range employees {
		if emp.DepartmentID == nil {
			continue
		}
		if _, ok := seen[*emp.DepartmentID]; !ok {
			seen[*emp.DepartmentID] = struct{}{}
			ids = append(ids, *emp.DepartmentID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var depts []domain.Department
	if err := db.Where("id IN ?", ids).Find(&depts).Error; err != nil {
		return err
	}

	byID := make(map[int64]*domain.Department, len(depts))
	for i := range depts {
		byID[depts[i].ID] = &depts[i]
	}

	for i := range employees {
		if employees[i].DepartmentID == nil {
			continue
		}
		if dept, ok := byID[*employees[i].DepartmentID]; ok {
			d := *dept
			employees[i].Department = &d
		}
	}
	return nil
}

func ensureDepartmentExists(db *gorm.DB, id int64) error {
	var count int64
	if err := db.Model(&domain.Department{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrInvalidDepartment
	}
	return nil
}
