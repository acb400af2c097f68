package usecase

import (
	"errors"
	"testing"

	"studyplan-backend/internal/subject/repository"
)

func strPtr(s string) *string { return &s }

func newUsecase() SubjectUsecase {
	return NewSubjectUsecase(repository.NewMemorySubjectRepository())
}

func TestCreateSubject(t *testing.T) {
	u := newUsecase()

	subject, err := u.CreateSubject("Mathematics", "#ef4444")
	if err != nil {
		t.Fatalf("CreateSubject: %v", err)
	}
	if subject.ID == "" {
		t.Error("id not assigned")
	}
	if subject.Name != "Mathematics" || subject.Color != "#ef4444" {
		t.Errorf("fields not stored: %+v", subject)
	}
	if subject.CreatedAt.IsZero() {
		t.Error("createdAt not assigned")
	}
}

func TestCreateSubjectEmptyName(t *testing.T) {
	u := newUsecase()
	if _, err := u.CreateSubject("  ", "#fff"); !errors.Is(err, ErrInvalidSubject) {
		t.Errorf("got %v, want ErrInvalidSubject", err)
	}
}

func TestCreateSubjectDefaultColor(t *testing.T) {
	u := newUsecase()
	subject, err := u.CreateSubject("Physics", "")
	if err != nil {
		t.Fatalf("CreateSubject: %v", err)
	}
	if subject.Color != defaultColor {
		t.Errorf("color = %q, want default %q", subject.Color, defaultColor)
	}
}

func TestListSubjectsInsertionOrder(t *testing.T) {
	u := newUsecase()
	for _, name := range []string{"Math", "Physics", "Chemistry"} {
		if _, err := u.CreateSubject(name, "#000"); err != nil {
			t.Fatalf("CreateSubject(%s): %v", name, err)
		}
	}

	subjects, err := u.ListSubjects()
	if err != nil {
		t.Fatalf("ListSubjects: %v", err)
	}
	want := []string{"Math", "Physics", "Chemistry"}
	if len(subjects) != len(want) {
		t.Fatalf("got %d subjects, want %d", len(subjects), len(want))
	}
	for i, name := range want {
		if subjects[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, subjects[i].Name, name)
		}
	}
}

func TestUpdateSubject(t *testing.T) {
	u := newUsecase()
	created, _ := u.CreateSubject("Math", "#000")

	updated, err := u.UpdateSubject(created.ID, SubjectUpdateRequest{Color: strPtr("#ef4444")})
	if err != nil {
		t.Fatalf("UpdateSubject: %v", err)
	}
	if updated.Name != "Math" {
		t.Error("unpatched name changed")
	}
	if updated.Color != "#ef4444" {
		t.Errorf("color = %q, want #ef4444", updated.Color)
	}
}

func TestUpdateSubjectNotFound(t *testing.T) {
	u := newUsecase()
	_, err := u.UpdateSubject("nope", SubjectUpdateRequest{Name: strPtr("x")})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("got %v, want ErrSubjectNotFound", err)
	}
}

func TestDeleteSubjectTwice(t *testing.T) {
	u := newUsecase()
	created, _ := u.CreateSubject("Math", "#000")

	if err := u.DeleteSubject(created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := u.DeleteSubject(created.ID); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("second delete: got %v, want ErrSubjectNotFound", err)
	}
}
