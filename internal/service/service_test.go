package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/company-records-api/internal/domain"
	"github.com/company-records-api/internal/dto"
)

type mockDepartmentRepo struct {
	departments map[int64]*domain.Department
	nextID      int64
	calls       int
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{
		departments: make(map[int64]*domain.Department),
		nextID:      1,
	}
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	m.calls++
	result := []domain.Department{}
	for id := int64(1); id < m.nextID; id++ {
		if dept, ok := m.departments[id]; ok {
			result = append(result, *dept)
		}
	}
	return result, nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	m.calls++
	if dept, ok := m.departments[id]; ok {
		copied := *dept
		return &copied, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	m.calls++
	for _, existing := range m.departments {
		if existing.Name == dept.Name {
			return domain.ErrDuplicateDepartmentName
		}
	}
	dept.ID = m.nextID
	dept.CreatedAt = time.Now()
	m.nextID++
	copied := *dept
	m.departments[dept.ID] = &copied
	return nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, id int64, apply func(*domain.Department) error) (*domain.Department, error) {
	m.calls++
	existing, ok := m.departments[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	dept := *existing
	if err := apply(&dept); err != nil {
		return nil, err
	}
	for otherID, other := range m.departments {
		if otherID != id && other.Name == dept.Name {
			return nil, domain.ErrDuplicateDepartmentName
		}
	}
	m.departments[id] = &dept
	result := dept
	return &result, nil
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	m.calls++
	if _, ok := m.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
	calls     int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	m.calls++
	result := []domain.Employee{}
	for id := int64(1); id < m.nextID; id++ {
		if emp, ok := m.employees[id]; ok {
			result = append(result, *emp)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	m.calls++
	if emp, ok := m.employees[id]; ok {
		copied := *emp
		return &copied, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	m.calls++
	for _, existing := range m.employees {
		if existing.EmpNo == emp.EmpNo {
			return domain.ErrDuplicateEmpNo
		}
	}
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	m.nextID++
	copied := *emp
	m.employees[emp.ID] = &copied
	return nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id int64, apply func(*domain.Employee) error) (*domain.Employee, error) {
	m.calls++
	existing, ok := m.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	emp := *existing
	if err := apply(&emp); err != nil {
		return nil, err
	}
	m.employees[id] = &emp
	result := emp
	return &result, nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	m.calls++
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func strPtr(s string) *string { return &s }

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("expected error for field %q, got %v", field, verr.Fields)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("expected error to be of validation kind")
	}
}

func TestDepartmentService_Create_Success(t *testing.T) {
	repo := newMockDepartmentRepo()
	svc := NewDepartmentService(repo)

	dept, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Engineering"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dept.ID != 1 || dept.Name != "Engineering" || dept.Note != nil {
		t.Errorf("unexpected department: %+v", dept)
	}
}

func TestDepartmentService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		req   dto.CreateDepartmentRequest
		field string
	}{
		{"empty name", dto.CreateDepartmentRequest{Name: ""}, "name"},
		{"long name", dto.CreateDepartmentRequest{Name: strings.Repeat("a", 51)}, "name"},
		{"long note", dto.CreateDepartmentRequest{Name: "IT", Note: strPtr(strings.Repeat("n", 201))}, "note"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockDepartmentRepo()
			svc := NewDepartmentService(repo)

			_, err := svc.Create(context.Background(), &tc.req)
			assertFieldError(t, err, tc.field)
			if repo.calls != 0 {
				t.Error("repository must not be called on validation failure")
			}
		})
	}
}

func TestDepartmentService_Create_CountsCharactersNotBytes(t *testing.T) {
	svc := NewDepartmentService(newMockDepartmentRepo())

	// 50 символов кириллицы - 100 байт
	name := strings.Repeat("я", 50)
	if _, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: name}); err != nil {
		t.Fatalf("expected 50-character name to be accepted, got %v", err)
	}
}

func TestDepartmentService_Create_Duplicate(t *testing.T) {
	svc := NewDepartmentService(newMockDepartmentRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateDepartmentRequest{Name: "IT"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Create(ctx, &dto.CreateDepartmentRequest{Name: "IT"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestDepartmentService_Update_NoteOnly(t *testing.T) {
	repo := newMockDepartmentRepo()
	svc := NewDepartmentService(repo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateDepartmentRequest{Name: "IT"})

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateDepartmentRequest{Note: dto.Some("servers")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "IT" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}
	if updated.Note == nil || *updated.Note != "servers" {
		t.Errorf("expected note 'servers', got %v", updated.Note)
	}
}

func TestDepartmentService_Update_NameOnly(t *testing.T) {
	svc := NewDepartmentService(newMockDepartmentRepo())
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateDepartmentRequest{Name: "IT", Note: strPtr("keep me")})

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateDepartmentRequest{Name: dto.Some("Platform")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Platform" {
		t.Errorf("expected name 'Platform', got %q", updated.Name)
	}
	if updated.Note == nil || *updated.Note != "keep me" {
		t.Errorf("expected note unchanged, got %v", updated.Note)
	}
}

func TestDepartmentService_Update_ExplicitNull(t *testing.T) {
	repo := newMockDepartmentRepo()
	svc := NewDepartmentService(repo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateDepartmentRequest{Name: "IT", Note: strPtr("old")})

	cleared, err := svc.Update(ctx, created.ID, &dto.UpdateDepartmentRequest{Note: dto.Null[string]()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared.Note != nil {
		t.Errorf("expected note cleared, got %v", *cleared.Note)
	}

	callsBefore := repo.calls
	_, err = svc.Update(ctx, created.ID, &dto.UpdateDepartmentRequest{Name: dto.Null[string]()})
	assertFieldError(t, err, "name")
	if repo.calls != callsBefore {
		t.Error("repository must not be called on validation failure")
	}
}

func TestDepartmentService_Update_Validation(t *testing.T) {
	svc := NewDepartmentService(newMockDepartmentRepo())

	_, err := svc.Update(context.Background(), 1, &dto.UpdateDepartmentRequest{
		Name: dto.Some(""),
		Note: dto.Some(strings.Repeat("n", 201)),
	})
	assertFieldError(t, err, "name")
	assertFieldError(t, err, "note")
}

func TestDepartmentService_Update_NotFound(t *testing.T) {
	svc := NewDepartmentService(newMockDepartmentRepo())

	_, err := svc.Update(context.Background(), 999, &dto.UpdateDepartmentRequest{Name: dto.Some("X")})
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentService_Delete(t *testing.T) {
	svc := NewDepartmentService(newMockDepartmentRepo())
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateDepartmentRequest{Name: "IT"})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func validEmployeeRequest() *dto.CreateEmployeeRequest {
	return &dto.CreateEmployeeRequest{
		Name:   "Ann",
		EmpNo:  "E001",
		Gender: "F",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())

	req := validEmployeeRequest()
	req.Phone = strPtr("555-0000")
	deptID := int64(7)
	req.DepartmentID = &deptID

	emp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.Gender != domain.GenderFemale || *emp.Phone != "555-0000" || *emp.DepartmentID != 7 {
		t.Errorf("unexpected employee: %+v", emp)
	}
}

func TestEmployeeService_Create_Gender(t *testing.T) {
	for _, gender := range []string{"m", "f", "X", "", "MF", " M"} {
		t.Run("gender="+gender, func(t *testing.T) {
			svc := NewEmployeeService(newMockEmployeeRepo())
			req := validEmployeeRequest()
			req.Gender = gender

			_, err := svc.Create(context.Background(), req)
			assertFieldError(t, err, "gender")
		})
	}

	for _, gender := range []string{"M", "F"} {
		svc := NewEmployeeService(newMockEmployeeRepo())
		req := validEmployeeRequest()
		req.Gender = gender
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Errorf("gender %q: unexpected error: %v", gender, err)
		}
	}
}

func TestEmployeeService_Create_FieldBounds(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*dto.CreateEmployeeRequest)
	}{
		{"name", func(r *dto.CreateEmployeeRequest) { r.Name = "" }},
		{"name", func(r *dto.CreateEmployeeRequest) { r.Name = strings.Repeat("a", 51) }},
		{"emp_no", func(r *dto.CreateEmployeeRequest) { r.EmpNo = "" }},
		{"emp_no", func(r *dto.CreateEmployeeRequest) { r.EmpNo = strings.Repeat("1", 21) }},
		{"phone", func(r *dto.CreateEmployeeRequest) { r.Phone = strPtr(strings.Repeat("5", 31)) }},
		{"memo", func(r *dto.CreateEmployeeRequest) { r.Memo = strPtr(strings.Repeat("m", 201)) }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			repo := newMockEmployeeRepo()
			svc := NewEmployeeService(repo)
			req := validEmployeeRequest()
			tc.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assertFieldError(t, err, tc.field)
			if repo.calls != 0 {
				t.Error("repository must not be called on validation failure")
			}
		})
	}
}

func TestEmployeeService_Create_EmptyOptionalStrings(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())
	req := validEmployeeRequest()
	req.Phone = strPtr("")
	req.Memo = strPtr("")

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Errorf("expected empty optional strings to be accepted, got %v", err)
	}
}

func TestEmployeeService_Update_PhoneOnly(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())
	ctx := context.Background()

	created, _ := svc.Create(ctx, validEmployeeRequest())

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateEmployeeRequest{Phone: dto.Some("555-1234")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *updated.Phone != "555-1234" {
		t.Errorf("expected phone updated, got %v", updated.Phone)
	}
	if updated.Name != "Ann" || updated.EmpNo != "E001" || updated.Gender != domain.GenderFemale {
		t.Errorf("expected other fields unchanged, got %+v", updated)
	}
}

func TestEmployeeService_Update_ClearsNullableFields(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())
	ctx := context.Background()

	req := validEmployeeRequest()
	req.Memo = strPtr("note")
	deptID := int64(3)
	req.DepartmentID = &deptID
	created, _ := svc.Create(ctx, req)

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateEmployeeRequest{
		Memo:         dto.Null[string](),
		DepartmentID: dto.Null[int64](),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Memo != nil || updated.DepartmentID != nil {
		t.Errorf("expected memo and department cleared, got %+v", updated)
	}
}

func TestEmployeeService_Update_Validation(t *testing.T) {
	cases := []struct {
		field string
		req   dto.UpdateEmployeeRequest
	}{
		{"name", dto.UpdateEmployeeRequest{Name: dto.Null[string]()}},
		{"name", dto.UpdateEmployeeRequest{Name: dto.Some("")}},
		{"emp_no", dto.UpdateEmployeeRequest{EmpNo: dto.Null[string]()}},
		{"emp_no", dto.UpdateEmployeeRequest{EmpNo: dto.Some(strings.Repeat("1", 21))}},
		{"gender", dto.UpdateEmployeeRequest{Gender: dto.Null[string]()}},
		{"gender", dto.UpdateEmployeeRequest{Gender: dto.Some("m")}},
		{"phone", dto.UpdateEmployeeRequest{Phone: dto.Some(strings.Repeat("5", 31))}},
		{"memo", dto.UpdateEmployeeRequest{Memo: dto.Some(strings.Repeat("m", 201))}},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			repo := newMockEmployeeRepo()
			svc := NewEmployeeService(repo)

			_, err := svc.Update(context.Background(), 1, &tc.req)
			assertFieldError(t, err, tc.field)
			if repo.calls != 0 {
				t.Error("repository must not be called on validation failure")
			}
		})
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())

	_, err := svc.Update(context.Background(), 42, &dto.UpdateEmployeeRequest{Phone: dto.Some("1")})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Create_DuplicateEmpNo(t *testing.T) {
	repo := newMockEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	original, _ := svc.Create(ctx, validEmployeeRequest())

	dup := validEmployeeRequest()
	dup.Name = "Bob"
	dup.Gender = "M"
	if _, err := svc.Create(ctx, dup); !errors.Is(err, domain.ErrDuplicateEmpNo) {
		t.Fatalf("expected ErrDuplicateEmpNo, got %v", err)
	}

	got, _ := svc.GetByID(ctx, original.ID)
	if got.Name != "Ann" {
		t.Errorf("expected original untouched, got %+v", got)
	}
}
