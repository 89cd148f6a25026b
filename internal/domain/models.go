package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Подписи статуса сотрудника
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Department представляет подразделение организации
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника.
// Status не помечен default-тегом: иначе GORM пропустит false при вставке.
type Employee struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string          `json:"name" gorm:"type:varchar(100);not null"`
	Email        string          `json:"email" gorm:"type:varchar(254);not null;uniqueIndex"`
	DepartmentID int64           `json:"department_id" gorm:"not null;index"`
	Salary       decimal.Decimal `json:"salary" gorm:"type:decimal(10,2);not null"`
	Status       bool            `json:"status" gorm:"not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// StatusLabel возвращает отображаемое название статуса
func (e *Employee) StatusLabel() string {
	return StatusLabel(e.Status)
}

// DepartmentName возвращает имя подразделения, если оно загружено
func (e *Employee) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.Name
}

// StatusLabel переводит булев статус в подпись
func StatusLabel(active bool) string {
	if active {
		return StatusActive
	}
	return StatusInactive
}
