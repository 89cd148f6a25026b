package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/employee-records/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	ForEachBatch(ctx context.Context, batchSize int, fn func([]domain.Employee) error) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(emp).Error
	return translateEmployeeError(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Preload("Department").First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// List возвращает сотрудников, удовлетворяющих всем заданным критериям, по возрастанию id
func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	query := r.db.WithContext(ctx).
		Preload("Department").
		Joins("JOIN departments ON departments.id = employees.department_id")

	if filter.Query != "" {
		// Регистр приводится на стороне БД для обеих частей сравнения
		pattern := "%" + escapeLike(filter.Query) + "%"
		query = query.Where(
			`(LOWER(employees.name) LIKE LOWER(?) ESCAPE '\' OR LOWER(employees.email) LIKE LOWER(?) ESCAPE '\' OR LOWER(departments.name) LIKE LOWER(?) ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}

	if filter.Status != nil {
		query = query.Where("employees.status = ?", *filter.Status)
	}

	if filter.Department != "" {
		query = query.Where("departments.name = ?", filter.Department)
	}

	var employees []domain.Employee
	err := query.Order("employees.id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{ID: emp.ID}).
		Updates(map[string]any{
			"name":          emp.Name,
			"email":         emp.Email,
			"department_id": emp.DepartmentID,
			"salary":        emp.Salary,
			"status":        emp.Status,
		})
	if result.Error != nil {
		return translateEmployeeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

// ForEachBatch обходит всех сотрудников пачками по возрастанию id
func (r *employeeRepository) ForEachBatch(ctx context.Context, batchSize int, fn func([]domain.Employee) error) error {
	var batch []domain.Employee
	return r.db.WithContext(ctx).
		Preload("Department").
		FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}

func translateEmployeeError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateEmployeeEmail
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrDepartmentNotFound
	default:
		return err
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, чтобы поиск был буквальным
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
