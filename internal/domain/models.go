package domain

import (
	"time"
)

// Gender - пол сотрудника, строго M или F
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Department представляет подразделение
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	Note      *string   `json:"note" gorm:"type:varchar(200)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника.
// DepartmentID может указывать на уже удалённое подразделение, тогда Department остаётся nil.
type Employee struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"type:varchar(50);not null"`
	EmpNo        string    `json:"emp_no" gorm:"column:emp_no;type:varchar(20);not null;uniqueIndex"`
	Gender       Gender    `json:"gender" gorm:"type:varchar(1);not null"`
	Phone        *string   `json:"phone" gorm:"type:varchar(30)"`
	Memo         *string   `json:"memo" gorm:"type:text"`
	DepartmentID *int64    `json:"department_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Заполняется отдельным запросом в репозитории
	Department *Department `json:"department" gorm:"-"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}
