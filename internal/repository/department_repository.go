package repository

import (
	"context"

	"github.com/company-records-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями.
// Каждая операция записи выполняется в одной транзакции.
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, id int64, apply func(*domain.Department) error) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	depts := []domain.Department{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error; err != nil {
		return nil, translateError(err, domain.ErrDuplicateDepartmentName)
	}
	return depts, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	if err := r.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		return nil, translateError(notFound(err, domain.ErrDepartmentNotFound), domain.ErrDuplicateDepartmentName)
	}
	return &dept, nil
}

// Create вставляет запись и перечитывает её, чтобы created_at совпадал с сохранённым
func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dept).Error; err != nil {
			return err
		}
		return tx.First(dept, dept.ID).Error
	})
	return translateError(err, domain.ErrDuplicateDepartmentName)
}

// Update читает запись, применяет apply и сохраняет результат в той же транзакции
func (r *departmentRepository) Update(ctx context.Context, id int64, apply func(*domain.Department) error) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dept, id).Error; err != nil {
			return notFound(err, domain.ErrDepartmentNotFound)
		}
		if err := apply(&dept); err != nil {
			return err
		}
		if err := tx.Save(&dept).Error; err != nil {
			return err
		}
		return tx.First(&dept, id).Error
	})
	if err != nil {
		return nil, translateError(err, domain.ErrDuplicateDepartmentName)
	}
	return &dept, nil
}

// Delete удаляет подразделение; сотрудники сохраняют свой department_id
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dept domain.Department
		if err := tx.First(&dept, id).Error; err != nil {
			return notFound(err, domain.ErrDepartmentNotFound)
		}
		return tx.Delete(&domain.Department{}, id).Error
	})
	return translateError(err, domain.ErrDuplicateDepartmentName)
}
