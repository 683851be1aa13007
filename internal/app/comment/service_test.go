package comment

import (
	"errors"
	"testing"

	"backend/internal/apperr"
)

type fakeRepo struct {
	comments []*Comment
	parents  map[string]map[uint64]bool
	nextID   uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{parents: map[string]map[uint64]bool{
		ParentTask:    {},
		ParentPost:    {},
		ParentArchive: {},
	}}
}

func (f *fakeRepo) Create(c *Comment) error {
	f.nextID++
	c.ID = f.nextID
	f.comments = append(f.comments, c)
	return nil
}

func (f *fakeRepo) Delete(id uint64) error {
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) ListByParent(kind string, parentID uint64) ([]*Comment, error) {
	var out []*Comment
	for _, c := range f.comments {
		if c.ParentKind == kind && c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByKind(kind string) ([]*Comment, error) {
	var out []*Comment
	for _, c := range f.comments {
		if c.ParentKind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ParentExists(kind string, parentID uint64) (bool, error) {
	return f.parents[kind][parentID], nil
}

func TestCreateRejectsUnknownParentKind(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.Create("board", 1, "Kim", "hello"); !apperr.IsValidation(err) {
		t.Fatalf("got %v, want a validation error", err)
	}
}

func TestCreateRejectsMissingParent(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Create(ParentTask, 42, "Kim", "hello")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCreateRequiresContent(t *testing.T) {
	repo := newFakeRepo()
	repo.parents[ParentPost][1] = true
	svc := NewService(repo)
	if _, err := svc.Create(ParentPost, 1, "Kim", ""); !apperr.IsValidation(err) {
		t.Fatalf("got %v, want a validation error", err)
	}
}

// Same numeric id under different parent kinds must not collide.
func TestParentKindsAreIsolated(t *testing.T) {
	repo := newFakeRepo()
	repo.parents[ParentTask][7] = true
	repo.parents[ParentPost][7] = true
	svc := NewService(repo)

	if _, err := svc.Create(ParentTask, 7, "Kim", "on the task"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ParentPost, 7, "Lee", "on the post"); err != nil {
		t.Fatal(err)
	}

	taskComments, _ := svc.ListByParent(ParentTask, 7)
	if len(taskComments) != 1 || taskComments[0].Content != "on the task" {
		t.Fatalf("task comments = %+v, want only the task comment", taskComments)
	}
	postComments, _ := svc.ListByParent(ParentPost, 7)
	if len(postComments) != 1 || postComments[0].Content != "on the post" {
		t.Fatalf("post comments = %+v, want only the post comment", postComments)
	}
}
