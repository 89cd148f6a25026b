package service_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/employee-records/internal/config"
	"github.com/employee-records/internal/database"
	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/dto"
	"github.com/employee-records/internal/migrations"
	"github.com/employee-records/internal/repository"
	"github.com/employee-records/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	ctx      context.Context
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
	depts    service.DepartmentService
	emps     service.EmployeeService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "records.db"),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, migrations.Up(sqlDB, config.DriverSQLite))

	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	return &env{
		ctx:      context.Background(),
		deptRepo: deptRepo,
		empRepo:  empRepo,
		depts:    service.NewDepartmentService(deptRepo),
		emps:     service.NewEmployeeService(empRepo, deptRepo, 1),
	}
}

func (e *env) mustDepartment(t *testing.T, name string) *domain.Department {
	t.Helper()
	dept, err := e.depts.Create(e.ctx, &dto.DepartmentForm{Name: name})
	require.NoError(t, err)
	return dept
}

func (e *env) mustEmployee(t *testing.T, name, email string, deptID int64, salary string, active bool) *domain.Employee {
	t.Helper()
	form := &dto.EmployeeForm{
		Name:         name,
		Email:        email,
		DepartmentID: strconv.FormatInt(deptID, 10),
		Salary:       salary,
	}
	if active {
		form.Status = "on"
	}
	emp, err := e.emps.Create(e.ctx, form)
	require.NoError(t, err)
	return emp
}

func (e *env) employeeCount(t *testing.T) int64 {
	t.Helper()
	n, err := e.empRepo.Count(e.ctx)
	require.NoError(t, err)
	return n
}

func (e *env) departmentCount(t *testing.T) int {
	t.Helper()
	all, err := e.depts.List(e.ctx)
	require.NoError(t, err)
	return len(all)
}

func requireFieldError(t *testing.T, err error, field string, code domain.ErrorCode) {
	t.Helper()
	var errs domain.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has(field, code), "errors: %v", errs)
}

func TestDepartmentService_CreateBlankName(t *testing.T) {
	e := newEnv(t)

	for _, name := range []string{"", "  "} {
		dept, err := e.depts.Create(e.ctx, &dto.DepartmentForm{Name: name})
		assert.Nil(t, dept)
		requireFieldError(t, err, "name", domain.CodeEmptyField)
	}
	assert.Zero(t, e.departmentCount(t))
}

func TestDepartmentService_CreateDuplicate(t *testing.T) {
	e := newEnv(t)
	e.mustDepartment(t, "Engineering")

	_, err := e.depts.Create(e.ctx, &dto.DepartmentForm{Name: "Engineering"})
	requireFieldError(t, err, "name", domain.CodeUniquenessConflict)

	all, err := e.depts.List(e.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Engineering", all[0].Name)
}

func TestDepartmentService_Update(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Engineering")
	e.mustDepartment(t, "Sales")

	t.Run("success keeps id", func(t *testing.T) {
		dept, err := e.depts.Update(e.ctx, eng.ID, &dto.DepartmentForm{Name: "Platform"})
		require.NoError(t, err)
		assert.Equal(t, eng.ID, dept.ID)
		assert.Equal(t, "Platform", dept.Name)
	})

	t.Run("blank name does not mutate", func(t *testing.T) {
		_, err := e.depts.Update(e.ctx, eng.ID, &dto.DepartmentForm{Name: ""})
		requireFieldError(t, err, "name", domain.CodeEmptyField)

		stored, err := e.depts.GetByID(e.ctx, eng.ID)
		require.NoError(t, err)
		assert.Equal(t, "Platform", stored.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := e.depts.Update(e.ctx, eng.ID, &dto.DepartmentForm{Name: "Sales"})
		requireFieldError(t, err, "name", domain.CodeUniquenessConflict)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := e.depts.Update(e.ctx, 999, &dto.DepartmentForm{Name: "X"})
		assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_DeleteTwoPhase(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")
	sales := e.mustDepartment(t, "Sales")
	for i := 0; i < 3; i++ {
		e.mustEmployee(t, "Eng"+strconv.Itoa(i), "eng"+strconv.Itoa(i)+"@x.com", eng.ID, "10", true)
	}
	e.mustEmployee(t, "Bo", "b@x.com", sales.ID, "10", true)

	dept, action, err := e.depts.Delete(e.ctx, eng.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteActionConfirm, action)
	assert.Equal(t, "Eng", dept.Name)
	assert.Equal(t, 2, e.departmentCount(t))
	assert.Equal(t, int64(4), e.employeeCount(t))

	_, action, err = e.depts.Delete(e.ctx, eng.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteActionExecute, action)
	assert.Equal(t, 1, e.departmentCount(t))
	assert.Equal(t, int64(1), e.employeeCount(t))

	_, _, err = e.depts.Delete(e.ctx, eng.ID, true)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestEmployeeService_CreateNegativeSalary(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")

	_, err := e.emps.Create(e.ctx, &dto.EmployeeForm{
		Name: "Ann", Email: "a@x.com", DepartmentID: strconv.FormatInt(eng.ID, 10), Salary: "-1", Status: "on",
	})
	requireFieldError(t, err, "salary", domain.CodeNegativeValue)
	assert.Zero(t, e.employeeCount(t))
}

func TestEmployeeService_CreateDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")
	e.mustEmployee(t, "Ann", "a@x.com", eng.ID, "10", true)

	_, err := e.emps.Create(e.ctx, &dto.EmployeeForm{
		Name: "Other Ann", Email: "a@x.com", DepartmentID: strconv.FormatInt(eng.ID, 10), Salary: "10",
	})
	requireFieldError(t, err, "email", domain.CodeUniquenessConflict)
	assert.Equal(t, int64(1), e.employeeCount(t))
}

func TestEmployeeService_CreateUnknownDepartment(t *testing.T) {
	e := newEnv(t)

	_, err := e.emps.Create(e.ctx, &dto.EmployeeForm{
		Name: "Ann", Email: "a@x.com", DepartmentID: "42", Salary: "10",
	})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	assert.True(t, domain.IsNotFound(err))
	assert.Zero(t, e.employeeCount(t))
}

func TestEmployeeService_Update(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")
	ann := e.mustEmployee(t, "Ann", "a@x.com", eng.ID, "10", true)

	t.Run("not found performs no mutation", func(t *testing.T) {
		_, err := e.emps.Update(e.ctx, 999, &dto.EmployeeForm{
			Name: "Ghost", Email: "g@x.com", DepartmentID: strconv.FormatInt(eng.ID, 10), Salary: "1",
		})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
		assert.Equal(t, int64(1), e.employeeCount(t))
	})

	t.Run("invalid form keeps stored record", func(t *testing.T) {
		_, err := e.emps.Update(e.ctx, ann.ID, &dto.EmployeeForm{
			Name: "", Email: "a@x.com", DepartmentID: strconv.FormatInt(eng.ID, 10), Salary: "-5",
		})
		requireFieldError(t, err, "name", domain.CodeEmptyField)
		requireFieldError(t, err, "salary", domain.CodeNegativeValue)

		stored, err := e.emps.GetByID(e.ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann", stored.Name)
		assert.Equal(t, "10.00", stored.Salary.StringFixed(2))
	})

	t.Run("success", func(t *testing.T) {
		emp, err := e.emps.Update(e.ctx, ann.ID, &dto.EmployeeForm{
			Name: "Anna", Email: "anna@x.com", DepartmentID: strconv.FormatInt(eng.ID, 10), Salary: "20.25",
		})
		require.NoError(t, err)
		assert.Equal(t, ann.ID, emp.ID)

		stored, err := e.emps.GetByID(e.ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "Anna", stored.Name)
		assert.Equal(t, "anna@x.com", stored.Email)
		assert.Equal(t, "20.25", stored.Salary.StringFixed(2))
		assert.False(t, stored.Status)
	})
}

func TestEmployeeService_DeleteTwoPhase(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")
	ann := e.mustEmployee(t, "Ann", "a@x.com", eng.ID, "10", true)

	_, action, err := e.emps.Delete(e.ctx, ann.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteActionConfirm, action)
	assert.Equal(t, int64(1), e.employeeCount(t))

	_, action, err = e.emps.Delete(e.ctx, ann.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DeleteActionExecute, action)
	assert.Zero(t, e.employeeCount(t))
	assert.Equal(t, 1, e.departmentCount(t))

	_, _, err = e.emps.Delete(e.ctx, ann.ID, false)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_ListAndExport(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")
	sales := e.mustDepartment(t, "Sales")
	e.mustEmployee(t, "Ann", "a@x.com", eng.ID, "1000", true)
	e.mustEmployee(t, "Bo", "b@x.com", sales.ID, "2000.5", false)

	list := func(q, status, dept string) []string {
		view, err := e.emps.List(e.ctx, dto.EmployeeListQuery{Query: q, Status: status, Department: dept})
		require.NoError(t, err)
		assert.Len(t, view.Departments, 2)
		var names []string
		for _, emp := range view.Employees {
			names = append(names, emp.Name)
		}
		return names
	}

	assert.Equal(t, []string{"Ann"}, list("", "Active", ""))
	assert.Equal(t, []string{"Bo"}, list("b@", "", ""))
	assert.Equal(t, []string{"Ann"}, list("", "", "Eng"))
	assert.Equal(t, []string{"Ann", "Bo"}, list("", "", ""))

	view, err := e.emps.List(e.ctx, dto.EmployeeListQuery{Query: "b@", Status: "Inactive", Department: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, "b@", view.Query)
	assert.Equal(t, "Inactive", view.StatusFilter)
	assert.Equal(t, "Sales", view.DepartmentFilter)
	assert.True(t, view.Filtered)

	view, err = e.emps.List(e.ctx, dto.EmployeeListQuery{})
	require.NoError(t, err)
	assert.False(t, view.Filtered)

	var buf bytes.Buffer
	require.NoError(t, e.emps.Export(e.ctx, &buf))
	assert.Equal(t,
		"Name,Email,Department,Salary,Status\n"+
			"Ann,a@x.com,Eng,1000.00,Active\n"+
			"Bo,b@x.com,Sales,2000.50,Inactive\n",
		buf.String())
}

func TestEmployeeService_ListUnicodeQuery(t *testing.T) {
	e := newEnv(t)
	eng := e.mustDepartment(t, "Eng")
	e.mustEmployee(t, "Élodie", "elodie@x.com", eng.ID, "1000", true)
	e.mustEmployee(t, "Ann", "a@x.com", eng.ID, "1000", true)

	for _, q := range []string{"Élodie", "élodie", "ÉLODIE"} {
		view, err := e.emps.List(e.ctx, dto.EmployeeListQuery{Query: q})
		require.NoError(t, err)
		require.Len(t, view.Employees, 1, "query %q", q)
		assert.Equal(t, "Élodie", view.Employees[0].Name)
	}
}
