package project

import (
	"errors"
	"testing"

	"backend/internal/apperr"
	"backend/internal/app/task"
	"backend/internal/utils"

	"go.uber.org/zap"
)

// fakeRepo mimics the transactional cascade: deleting a project takes its
// tasks down with it, so the orphan check below is meaningful.
type fakeRepo struct {
	projects map[uint64]*Project
	tasks    *fakeTasks
	nextID   uint64
}

func (f *fakeRepo) Create(p *Project) error {
	f.nextID++
	p.ID = f.nextID
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepo) List() ([]*Project, error) {
	out := make([]*Project, 0, len(f.projects))
	for id := uint64(1); id <= f.nextID; id++ {
		if p, ok := f.projects[id]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(id uint64, title, period string) error {
	p, ok := f.projects[id]
	if !ok {
		return apperr.ErrNotFound
	}
	p.Title = title
	p.Period = period
	return nil
}

func (f *fakeRepo) DeleteCascade(id uint64) error {
	delete(f.projects, id)
	kept := f.tasks.items[:0]
	for _, t := range f.tasks.items {
		if t.ProjectID == nil || *t.ProjectID != id {
			kept = append(kept, t)
		}
	}
	f.tasks.items = kept
	return nil
}

type fakeTasks struct {
	items []*task.Task
}

func (f *fakeTasks) ListByProject(projectID uint64) ([]*task.Task, error) {
	var out []*task.Task
	for _, t := range f.items {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

type nopActivity struct{}

func (nopActivity) Log(string, string) {}

func newProjectService() (Service, *fakeRepo, *fakeTasks) {
	tasks := &fakeTasks{}
	repo := &fakeRepo{projects: make(map[uint64]*Project), tasks: tasks}
	svc := NewService(repo, tasks, nopActivity{}, utils.NewEventBus(), zap.NewNop())
	return svc, repo, tasks
}

func TestCreateRequiresTitle(t *testing.T) {
	svc, repo, _ := newProjectService()
	if _, err := svc.Create(CreateProjectRequest{}, "Kim"); !apperr.IsValidation(err) {
		t.Fatalf("got %v, want a validation error", err)
	}
	if len(repo.projects) != 0 {
		t.Fatal("a titleless project reached the store")
	}
}

func TestListAttachesTodos(t *testing.T) {
	svc, _, tasks := newProjectService()
	p, err := svc.Create(CreateProjectRequest{Title: "launch", Period: "2026 Q2"}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	tasks.items = append(tasks.items,
		&task.Task{ID: 1, Title: "todo 1", ProjectID: &p.ID},
		&task.Task{ID: 2, Title: "unrelated"},
	)

	projects, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || len(projects[0].Todos) != 1 {
		t.Fatalf("todos = %d, want 1", len(projects[0].Todos))
	}
}

func TestDeleteCascadeLeavesNoOrphans(t *testing.T) {
	svc, repo, tasks := newProjectService()
	p, _ := svc.Create(CreateProjectRequest{Title: "launch"}, "Kim")
	other, _ := svc.Create(CreateProjectRequest{Title: "other"}, "Kim")
	tasks.items = append(tasks.items,
		&task.Task{ID: 1, ProjectID: &p.ID},
		&task.Task{ID: 2, ProjectID: &p.ID},
		&task.Task{ID: 3, ProjectID: &other.ID},
	)

	if err := svc.Delete(p.ID, "Kim"); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.projects[p.ID]; ok {
		t.Fatal("project survived its own delete")
	}
	orphans, _ := tasks.ListByProject(p.ID)
	if len(orphans) != 0 {
		t.Fatalf("orphaned tasks = %d, want 0", len(orphans))
	}
	remaining, _ := tasks.ListByProject(other.ID)
	if len(remaining) != 1 {
		t.Fatal("cascade reached into another project's tasks")
	}
}

func TestDeleteMissingProject(t *testing.T) {
	svc, _, _ := newProjectService()
	if err := svc.Delete(42, "Kim"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
