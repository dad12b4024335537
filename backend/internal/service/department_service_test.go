package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

// ── test helpers ──

func setupTestDepartmentService(features repository.Features) (*departmentService, *mockRepos) {
	mocks := newMockRepos(features)
	svc := NewDepartmentService(mocks.repo, zap.NewNop()).(*departmentService)
	return svc, mocks
}

func mustCreateDepartment(t *testing.T, svc DepartmentService, name string) string {
	t.Helper()
	resp, err := svc.Create(context.Background(), &dto.DepartmentRequest{Name: name})
	if err != nil {
		t.Fatalf("create %s failed: %v", name, err)
	}
	return resp.URLSlug
}

// ── Create ──

func TestDepartmentService_Create(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.FullFeatures())

	resp, err := svc.Create(context.Background(), &dto.DepartmentRequest{Name: "  Finance  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
	if !slugPattern.MatchString(resp.URLSlug) {
		t.Errorf("slug %q is not 8 lowercase alphanumerics", resp.URLSlug)
	}

	stored := mocks.depts.depts[1]
	if stored.Name != "Finance" {
		t.Errorf("expected trimmed name, got %q", stored.Name)
	}
	if stored.Slug == nil || *stored.Slug != resp.URLSlug {
		t.Errorf("stored slug does not match returned slug")
	}
}

func TestDepartmentService_Create_EmptyName(t *testing.T) {
	svc, _ := setupTestDepartmentService(repository.FullFeatures())

	_, err := svc.Create(context.Background(), &dto.DepartmentRequest{Name: "   "})
	if !errors.Is(err, ErrDepartmentNameRequired) {
		t.Errorf("expected ErrDepartmentNameRequired, got %v", err)
	}
}

func TestDepartmentService_Create_SlugsAreUnique(t *testing.T) {
	svc, _ := setupTestDepartmentService(repository.FullFeatures())

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		slug := mustCreateDepartment(t, svc, "Dept")
		if seen[slug] {
			t.Fatalf("slug %q assigned twice", slug)
		}
		seen[slug] = true
	}
}

func TestDepartmentService_Create_FallbackAfterCollisions(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.FullFeatures())
	svc.clock = func() time.Time { return time.UnixMilli(1700000000000) }

	mocks.depts.depts[99] = &model.Department{DepartmentID: 99, Name: "Taken", Slug: strPtr("aaaaaaaa")}
	calls := 0
	svc.newSlug = func() (string, error) {
		calls++
		return "aaaaaaaa", nil
	}

	slug := mustCreateDepartment(t, svc, "Finance")
	if calls != slugAttempts {
		t.Errorf("expected %d attempts, got %d", slugAttempts, calls)
	}
	if slug != "dept-loyw3v28" {
		t.Errorf("expected timestamp fallback, got %q", slug)
	}
}

func TestDepartmentService_Create_CheckErrorCountsAsCollision(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.FullFeatures())
	mocks.depts.slugErr = errors.New("catalog offline")

	slug := mustCreateDepartment(t, svc, "Finance")
	if !strings.HasPrefix(slug, "dept-") {
		t.Errorf("expected fallback slug, got %q", slug)
	}
}

func TestDepartmentService_Create_LegacySchemaReturnsDerivedSlug(t *testing.T) {
	svc, _ := setupTestDepartmentService(repository.Features{})

	slug := mustCreateDepartment(t, svc, "Human Resources")
	if slug != "human-resources" {
		t.Errorf("expected derived slug, got %q", slug)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].URLSlug != "human-resources" {
		t.Errorf("unexpected listing: %+v", list)
	}
}

// ── Update ──

func TestDepartmentService_Update_KeepsSlug(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.FullFeatures())
	slug := mustCreateDepartment(t, svc, "Finance")

	if err := svc.Update(context.Background(), slug, &dto.DepartmentRequest{Name: "Finance & Accounting"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := mocks.depts.depts[1]
	if stored.Name != "Finance & Accounting" {
		t.Errorf("name not updated: %q", stored.Name)
	}
	if *stored.Slug != slug {
		t.Errorf("slug changed from %q to %q", slug, *stored.Slug)
	}
}

func TestDepartmentService_Update_ByNumericID(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.FullFeatures())
	mustCreateDepartment(t, svc, "Finance")

	if err := svc.Update(context.Background(), "1", &dto.DepartmentRequest{Name: "Treasury"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if mocks.depts.depts[1].Name != "Treasury" {
		t.Error("update by id did not apply")
	}
}

func TestDepartmentService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestDepartmentService(repository.FullFeatures())

	err := svc.Update(context.Background(), "42", &dto.DepartmentRequest{Name: "Ghost"})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

// ── Delete ──

func TestDepartmentService_Delete_BlockedByQuestions(t *testing.T) {
	mocks := newMockRepos(repository.FullFeatures())
	svc := NewDepartmentService(mocks.repo, zap.NewNop())
	qsvc := NewQuestionService(mocks.repo, zap.NewNop())
	slug := mustCreateDepartment(t, svc, "Finance")

	if _, err := qsvc.Create(context.Background(), slug, &dto.QuestionRequest{QuestionText: "How was your day?"}); err != nil {
		t.Fatal(err)
	}

	err := svc.Delete(context.Background(), slug)
	if !errors.Is(err, ErrDepartmentHasQuestions) {
		t.Errorf("expected ErrDepartmentHasQuestions, got %v", err)
	}
}

func TestDepartmentService_Delete_Soft(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.FullFeatures())
	slug := mustCreateDepartment(t, svc, "Finance")

	if err := svc.Delete(context.Background(), slug); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if d := mocks.depts.depts[1]; d == nil || *d.IsActive {
		t.Error("expected the row to remain, deactivated")
	}

	list, _ := svc.List(context.Background())
	if len(list) != 0 {
		t.Errorf("deleted department still listed: %+v", list)
	}
	if _, err := svc.GetBySlug(context.Background(), slug); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound for inactive slug, got %v", err)
	}
}

func TestDepartmentService_Delete_Hard(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.Features{})
	mustCreateDepartment(t, svc, "Finance")

	if err := svc.Delete(context.Background(), "finance"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := mocks.depts.depts[1]; ok {
		t.Error("expected the row to be removed")
	}
}

func TestDepartmentService_NumericKeyIsID_LegacySchema(t *testing.T) {
	svc, mocks := setupTestDepartmentService(repository.Features{})
	mustCreateDepartment(t, svc, "Alpha")
	mustCreateDepartment(t, svc, "1")

	if err := svc.Update(context.Background(), "1", &dto.DepartmentRequest{Name: "Alpha Team"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if mocks.depts.depts[1].Name != "Alpha Team" || mocks.depts.depts[2].Name != "1" {
		t.Errorf("update hit the wrong row: %q, %q", mocks.depts.depts[1].Name, mocks.depts.depts[2].Name)
	}

	if err := svc.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := mocks.depts.depts[1]; ok {
		t.Error("expected id 1 to be removed")
	}
	if _, ok := mocks.depts.depts[2]; !ok {
		t.Error("department named \"1\" must survive DELETE /departments/1")
	}

	if err := svc.Delete(context.Background(), "3"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound for unknown id, got %v", err)
	}
}

// ── GetBySlug ──

func TestDepartmentService_GetBySlug(t *testing.T) {
	svc, _ := setupTestDepartmentService(repository.FullFeatures())
	slug := mustCreateDepartment(t, svc, "Finance")

	got, err := svc.GetBySlug(context.Background(), slug)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 1 || got.Name != "Finance" || got.Slug != slug || !got.IsActive {
		t.Errorf("unexpected detail: %+v", got)
	}
}

func strPtr(s string) *string { return &s }
