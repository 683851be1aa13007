package task

import (
	"errors"
	"testing"

	"backend/internal/apperr"
	"backend/internal/app/comment"
	"backend/internal/utils"

	"go.uber.org/zap"
)

type fakeRepo struct {
	tasks      map[uint64]*Task
	nextID     uint64
	casWrites  int
	casRefused bool
	deleted    []uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: make(map[uint64]*Task)}
}

func (f *fakeRepo) Create(t *Task) error {
	f.nextID++
	t.ID = f.nextID
	copied := *t
	f.tasks[t.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepo) List() ([]*Task, error) {
	out := make([]*Task, 0, len(f.tasks))
	for id := uint64(1); id <= f.nextID; id++ {
		if t, ok := f.tasks[id]; ok {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByProject(projectID uint64) ([]*Task, error) {
	all, _ := f.List()
	var out []*Task
	for _, t := range all {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateFields(id uint64, fields map[string]interface{}) error {
	t, ok := f.tasks[id]
	if !ok {
		return apperr.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			t.Title = v.(string)
		case "content":
			t.Content = v.(string)
		case "priority":
			t.Priority = v.(string)
		case "assignee":
			t.Assignee = v.(string)
		case "start_date":
			t.StartDate = v.(string)
		case "due_date":
			t.DueDate = v.(string)
		}
	}
	return nil
}

func (f *fakeRepo) UpdateStatusCAS(id uint64, status string, version uint64) (int64, error) {
	f.casWrites++
	t, ok := f.tasks[id]
	if !ok {
		return 0, nil
	}
	if f.casRefused || t.Version != version {
		return 0, nil
	}
	t.Status = status
	t.Version++
	return 1, nil
}

func (f *fakeRepo) DeleteCascade(id uint64) error {
	delete(f.tasks, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) CountActiveByAssignee(name string) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if t.Assignee == name && t.Status == StatusInProgress {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountOpenTodosByAssignee(name string) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if t.Assignee == name && t.ProjectID != nil && t.Status != StatusDone {
			n++
		}
	}
	return n, nil
}

type fakeComments struct{}

func (fakeComments) ListByKind(kind string) ([]*comment.Comment, error) {
	return nil, nil
}

type recordingActivity struct{ actions []string }

func (r *recordingActivity) Log(_, action string) {
	r.actions = append(r.actions, action)
}

func newTaskService(repo *fakeRepo) Service {
	return NewService(repo, fakeComments{}, &recordingActivity{}, utils.NewEventBus(), zap.NewNop())
}

func TestCreateWithoutTitleWritesNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)

	_, err := svc.Create(CreateTaskRequest{Priority: PriorityHigh}, "Kim")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apperr.IsValidation(err) {
		t.Fatalf("got %v, want a validation error", err)
	}
	if len(repo.tasks) != 0 {
		t.Fatal("a titleless task reached the store")
	}
}

func TestCreateDefaults(t *testing.T) {
	svc := newTaskService(newFakeRepo())

	created, err := svc.Create(CreateTaskRequest{Title: "write docs", DueDate: "2026-04-01"}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if created.Status != StatusWaiting {
		t.Fatalf("status = %q, want waiting", created.Status)
	}
	if created.Priority != PriorityNormal {
		t.Fatalf("priority = %q, want normal", created.Priority)
	}
	if created.StartDate != "2026-04-01" {
		t.Fatalf("start_date = %q, want the due date", created.StartDate)
	}
	if created.Version != 1 {
		t.Fatalf("version = %d, want 1", created.Version)
	}
}

func TestCreateRejectsUnknownPriority(t *testing.T) {
	svc := newTaskService(newFakeRepo())
	if _, err := svc.Create(CreateTaskRequest{Title: "x", Priority: "critical"}, "Kim"); !apperr.IsValidation(err) {
		t.Fatalf("got %v, want a validation error", err)
	}
}

func TestSetStatusIdempotentSkipsWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)
	created, _ := svc.Create(CreateTaskRequest{Title: "x"}, "Kim")

	got, err := svc.SetStatus(created.ID, StatusWaiting, created.Version)
	if err != nil {
		t.Fatal(err)
	}
	if repo.casWrites != 0 {
		t.Fatalf("cas writes = %d, want 0 for a no-op", repo.casWrites)
	}
	if got.Version != created.Version {
		t.Fatal("no-op bumped the version")
	}
}

func TestSetStatusBumpsVersion(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)
	created, _ := svc.Create(CreateTaskRequest{Title: "x"}, "Kim")

	got, err := svc.SetStatus(created.ID, StatusInProgress, created.Version)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusInProgress || got.Version != created.Version+1 {
		t.Fatalf("got status=%q version=%d, want in_progress with bumped version", got.Status, got.Version)
	}
}

func TestSetStatusStaleVersionConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)
	created, _ := svc.Create(CreateTaskRequest{Title: "x"}, "Kim")

	if _, err := svc.SetStatus(created.ID, StatusInProgress, created.Version); err != nil {
		t.Fatal(err)
	}
	// second writer still holds the original version
	_, err := svc.SetStatus(created.ID, StatusDone, created.Version)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestSetStatusZeroVersionUsesCurrent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)
	created, _ := svc.Create(CreateTaskRequest{Title: "x"}, "Kim")

	got, err := svc.SetStatus(created.ID, StatusDone, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusDone {
		t.Fatalf("status = %q, want done", got.Status)
	}
}

func TestUpdateIgnoresZeroFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)
	created, _ := svc.Create(CreateTaskRequest{Title: "keep me", Content: "body", Assignee: "Kim"}, "Kim")

	got, err := svc.Update(created.ID, UpdatePatch{Assignee: "Lee"}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if got.Assignee != "Lee" {
		t.Fatalf("assignee = %q, want Lee", got.Assignee)
	}
	if got.Title != "keep me" || got.Content != "body" {
		t.Fatal("empty patch fields clobbered existing values")
	}
}

func TestToggleDoneRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTaskService(repo)
	created, _ := svc.Create(CreateTaskRequest{Title: "x"}, "Kim")

	done, err := svc.ToggleDone(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if done.Status != StatusDone {
		t.Fatalf("status = %q, want done", done.Status)
	}
	back, err := svc.ToggleDone(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if back.Status != StatusWaiting {
		t.Fatalf("status = %q, want waiting", back.Status)
	}
}
