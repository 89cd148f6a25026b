package service

import (
	"context"
	"errors"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/employee-records/internal/repository"
	"github.com/employee-records/internal/validation"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, form *dto.DepartmentForm) (*domain.Department, error)
	Update(ctx context.Context, id int64, form *dto.DepartmentForm) (*domain.Department, error)
	Delete(ctx context.Context, id int64, confirmed bool) (*domain.Department, domain.DeleteAction, error)
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.List(ctx)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, form *dto.DepartmentForm) (*domain.Department, error) {
	dept, err := validation.Department(*form)
	if err != nil {
		return nil, err
	}

	// Уникальность имени проверяет хранилище
	if err := s.deptRepo.Create(ctx, &dept); err != nil {
		return nil, departmentFieldError(err)
	}

	return &dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, form *dto.DepartmentForm) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validated, err := validation.Department(*form)
	if err != nil {
		return nil, err
	}

	if err := s.deptRepo.UpdateName(ctx, id, validated.Name); err != nil {
		return nil, departmentFieldError(err)
	}

	dept.Name = validated.Name
	return dept, nil
}

// Delete без подтверждения только находит подразделение.
// С подтверждением удаляет его вместе со всеми сотрудниками.
func (s *departmentService) Delete(ctx context.Context, id int64, confirmed bool) (*domain.Department, domain.DeleteAction, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.DeleteActionConfirm, err
	}

	action := domain.PlanDelete(confirmed)
	if action == domain.DeleteActionConfirm {
		return dept, action, nil
	}

	if err := s.deptRepo.Delete(ctx, id); err != nil {
		return nil, action, err
	}

	return dept, action, nil
}

func departmentFieldError(err error) error {
	if errors.Is(err, domain.ErrDuplicateDepartmentName) {
		errs := domain.FieldErrors{}
		errs.Add("name", domain.CodeUniquenessConflict, "Department with this name already exists")
		return errs
	}
	return err
}
