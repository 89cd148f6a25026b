package export_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"testing"

	"github.com/employee-records/internal/domain"
	"github.com/employee-records/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAll(w io.Writer, employees []domain.Employee) error {
	ew := export.NewEmployeeWriter(w)
	if err := ew.WriteHeader(); err != nil {
		return err
	}
	if err := ew.Write(employees); err != nil {
		return err
	}
	return ew.Flush()
}

func TestEmployeeWriter(t *testing.T) {
	eng := &domain.Department{ID: 1, Name: "Eng"}
	sales := &domain.Department{ID: 2, Name: "Sales"}
	employees := []domain.Employee{
		{ID: 1, Name: "Ann", Email: "a@x.com", Department: eng, Salary: decimal.RequireFromString("1000"), Status: true},
		{ID: 2, Name: "Bo", Email: "b@x.com", Department: sales, Salary: decimal.RequireFromString("2500.5"), Status: false},
	}

	var buf bytes.Buffer
	require.NoError(t, writeAll(&buf, employees))

	want := "Name,Email,Department,Salary,Status\n" +
		"Ann,a@x.com,Eng,1000.00,Active\n" +
		"Bo,b@x.com,Sales,2500.50,Inactive\n"
	assert.Equal(t, want, buf.String())
}

func TestEmployeeWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAll(&buf, nil))
	assert.Equal(t, "Name,Email,Department,Salary,Status\n", buf.String())
}

func TestEmployeeWriter_Quoting(t *testing.T) {
	dept := &domain.Department{ID: 1, Name: "R&D, \"Labs\""}
	employees := []domain.Employee{
		{ID: 1, Name: "Doe, Jane", Email: "j@x.com", Department: dept, Salary: decimal.Zero, Status: true},
		{ID: 2, Name: "Multi\nLine", Email: "m@x.com", Department: dept, Salary: decimal.Zero, Status: true},
	}

	var buf bytes.Buffer
	require.NoError(t, writeAll(&buf, employees))

	assert.Contains(t, buf.String(), `"Doe, Jane",j@x.com,"R&D, ""Labs""",0.00,Active`)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Doe, Jane", records[1][0])
	assert.Equal(t, "R&D, \"Labs\"", records[1][2])
	assert.Equal(t, "Multi\nLine", records[2][0])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEmployeeWriter_FlushError(t *testing.T) {
	ew := export.NewEmployeeWriter(failingWriter{})
	require.NoError(t, ew.WriteHeader())
	assert.EqualError(t, ew.Flush(), "disk full")
}
