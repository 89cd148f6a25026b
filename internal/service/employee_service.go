package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/employee-records/internal/export"
	"github.com/employee-records/internal/repository"
	"github.com/employee-records/internal/validation"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context, query dto.EmployeeListQuery) (*dto.EmployeeListView, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, form *dto.EmployeeForm) (*domain.Employee, error)
	Update(ctx context.Context, id int64, form *dto.EmployeeForm) (*domain.Employee, error)
	Delete(ctx context.Context, id int64, confirmed bool) (*domain.Employee, domain.DeleteAction, error)
	Export(ctx context.Context, w io.Writer) error
}

type employeeService struct {
	empRepo         repository.EmployeeRepository
	deptRepo        repository.DepartmentRepository
	exportBatchSize int
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	exportBatchSize int,
) EmployeeService {
	return &employeeService{
		empRepo:         empRepo,
		deptRepo:        deptRepo,
		exportBatchSize: exportBatchSize,
	}
}

// List возвращает отфильтрованных сотрудников и все подразделения для фильтра
func (s *employeeService) List(ctx context.Context, query dto.EmployeeListQuery) (*dto.EmployeeListView, error) {
	filter := query.Filter()
	employees, err := s.empRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	departments, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeListView{
		Employees:        employees,
		Departments:      departments,
		Query:            query.Query,
		StatusFilter:     query.Status,
		DepartmentFilter: query.Department,
		Filtered:         !filter.IsEmpty(),
	}, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, form *dto.EmployeeForm) (*domain.Employee, error) {
	emp, err := validation.Employee(*form)
	if err != nil {
		return nil, err
	}

	if err := s.empRepo.Create(ctx, &emp); err != nil {
		return nil, employeeFieldError(err)
	}

	return &emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, form *dto.EmployeeForm) (*domain.Employee, error) {
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	emp, err := validation.Employee(*form)
	if err != nil {
		return nil, err
	}
	emp.ID = id

	if err := s.empRepo.Update(ctx, &emp); err != nil {
		return nil, employeeFieldError(err)
	}

	return &emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64, confirmed bool) (*domain.Employee, domain.DeleteAction, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.DeleteActionConfirm, err
	}

	action := domain.PlanDelete(confirmed)
	if action == domain.DeleteActionConfirm {
		return emp, action, nil
	}

	if err := s.empRepo.Delete(ctx, id); err != nil {
		return nil, action, err
	}

	return emp, action, nil
}

// Export выгружает всех сотрудников без фильтров, пачками по возрастанию id
func (s *employeeService) Export(ctx context.Context, w io.Writer) error {
	ew := export.NewEmployeeWriter(w)
	if err := ew.WriteHeader(); err != nil {
		return err
	}

	if err := s.empRepo.ForEachBatch(ctx, s.exportBatchSize, ew.Write); err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}

	return ew.Flush()
}

func employeeFieldError(err error) error {
	if errors.Is(err, domain.ErrDuplicateEmployeeEmail) {
		errs := domain.FieldErrors{}
		errs.Add("email", domain.CodeUniquenessConflict, "Employee with this email already exists")
		return errs
	}
	return err
}
