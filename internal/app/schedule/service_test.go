package schedule

import (
	"testing"

	"backend/internal/app/task"
	"backend/internal/utils"

	"go.uber.org/zap"
)

type fakeRepo struct {
	schedules      []*Schedule
	holidays       []*Holiday
	nextID         uint64
	lastMonthQuery string
	listCalls      int
}

func (f *fakeRepo) Create(s *Schedule) error {
	f.nextID++
	s.ID = f.nextID
	f.schedules = append(f.schedules, s)
	return nil
}

func (f *fakeRepo) List() ([]*Schedule, error) {
	f.listCalls++
	return f.schedules, nil
}

func (f *fakeRepo) ListByMonth(month string) ([]*Schedule, error) {
	f.lastMonthQuery = month
	var out []*Schedule
	for _, s := range f.schedules {
		if len(s.Date) >= 7 && s.Date[:7] == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(id uint64) error {
	for i, s := range f.schedules {
		if s.ID == id {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) ListHolidays() ([]*Holiday, error) { return f.holidays, nil }

type fakeCounter struct{ n int64 }

func (f *fakeCounter) Count() (int64, error) { return f.n, nil }

type fakeTasks struct{ tasks []*task.Task }

func (f *fakeTasks) List() ([]*task.Task, error) { return f.tasks, nil }

type nopActivity struct{}

func (nopActivity) Log(string, string) {}

func newScheduleService(repo *fakeRepo, members int64) Service {
	return NewService(repo, &fakeCounter{n: members}, &fakeTasks{}, nopActivity{}, utils.NewEventBus(), zap.NewNop())
}

func TestCreatePersonalTargetIsAuthorNeverSentinel(t *testing.T) {
	repo := &fakeRepo{}
	svc := newScheduleService(repo, 1)

	// a one-person team: a full selection would equal the member count,
	// but personal events must still store the literal name
	sched, err := svc.Create(CreateScheduleRequest{
		Type: TypeAnnualLeave,
		Date: "2026-03-10",
	}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if sched.Target != "Kim" {
		t.Fatalf("target = %q, want Kim", sched.Target)
	}
	if sched.Target == TargetEveryone {
		t.Fatal("personal event stored the everyone sentinel")
	}
}

func TestCreatePersonalSelectedNamesJoined(t *testing.T) {
	svc := newScheduleService(&fakeRepo{}, 2)
	sched, err := svc.Create(CreateScheduleRequest{
		Type:    TypeBusinessTrip,
		Date:    "2026-03-10",
		Targets: []string{"Kim", "Lee"},
	}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if sched.Target != "Kim, Lee" {
		t.Fatalf("target = %q, want \"Kim, Lee\"", sched.Target)
	}
}

func TestCreateSharedFullSelectionCollapsesToSentinel(t *testing.T) {
	svc := newScheduleService(&fakeRepo{}, 3)
	sched, err := svc.Create(CreateScheduleRequest{
		Type:    TypeMeeting,
		Content: "all hands",
		Date:    "2026-03-10",
		Targets: []string{"Kim", "Lee", "Park"},
	}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if sched.Target != TargetEveryone {
		t.Fatalf("target = %q, want the everyone sentinel", sched.Target)
	}
}

func TestCreateSharedSubsetStaysJoined(t *testing.T) {
	svc := newScheduleService(&fakeRepo{}, 3)
	sched, err := svc.Create(CreateScheduleRequest{
		Type:    TypeMeeting,
		Content: "design sync",
		Date:    "2026-03-10",
		Targets: []string{"Kim", "Lee"},
	}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if sched.Target != "Kim, Lee" {
		t.Fatalf("target = %q, want \"Kim, Lee\"", sched.Target)
	}
}

func TestCreateSharedEmptySelectionMeansEveryone(t *testing.T) {
	svc := newScheduleService(&fakeRepo{}, 3)
	sched, err := svc.Create(CreateScheduleRequest{
		Type:    TypeMeeting,
		Content: "retro",
		Date:    "2026-03-10",
	}, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if sched.Target != TargetEveryone {
		t.Fatalf("target = %q, want the everyone sentinel", sched.Target)
	}
}

func TestCreateDefaultsContentAndTime(t *testing.T) {
	svc := newScheduleService(&fakeRepo{}, 1)

	am, err := svc.Create(CreateScheduleRequest{Type: TypeAMHalfDay, Date: "2026-03-10"}, "Lee")
	if err != nil {
		t.Fatal(err)
	}
	if am.Content != TypeAMHalfDay {
		t.Fatalf("content = %q, want the type label", am.Content)
	}
	if am.Time != "09:00" {
		t.Fatalf("time = %q, want 09:00", am.Time)
	}

	pm, err := svc.Create(CreateScheduleRequest{Type: TypePMHalfDay, Date: "2026-03-10"}, "Lee")
	if err != nil {
		t.Fatal(err)
	}
	if pm.Time != "14:00" {
		t.Fatalf("pm time = %q, want 14:00", pm.Time)
	}
}

func TestCreateSharedWithoutContentRejected(t *testing.T) {
	svc := newScheduleService(&fakeRepo{}, 1)
	if _, err := svc.Create(CreateScheduleRequest{Type: TypeMeeting, Date: "2026-03-10"}, "Kim"); err == nil {
		t.Fatal("expected validation error for empty shared content")
	}
}

// A month view must hit the month-scoped query instead of loading the whole
// table, and an unscoped view falls back to the full list.
func TestMonthViewUsesMonthScopedQuery(t *testing.T) {
	repo := &fakeRepo{}
	svc := newScheduleService(repo, 2)

	if _, err := svc.Create(CreateScheduleRequest{
		Type: TypeAnnualLeave, Date: "2026-03-10",
	}, "Kim"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(CreateScheduleRequest{
		Type: TypeAnnualLeave, Date: "2026-04-02",
	}, "Kim"); err != nil {
		t.Fatal(err)
	}

	view, err := svc.MonthView("2026-03", false, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if repo.lastMonthQuery != "2026-03" {
		t.Fatalf("month query = %q, want 2026-03", repo.lastMonthQuery)
	}
	if repo.listCalls != 0 {
		t.Fatalf("month view loaded the full table (%d List calls)", repo.listCalls)
	}
	if len(view.Entries) != 1 {
		t.Fatalf("entries = %d, want only the March event", len(view.Entries))
	}

	all, err := svc.MonthView("", false, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("unscoped view should use List, got %d calls", repo.listCalls)
	}
	if len(all.Entries) != 2 {
		t.Fatalf("unscoped entries = %d, want 2", len(all.Entries))
	}
}

// Lee takes a morning half-day: the calendar shows a half-day badge under
// Lee's name, and Lee's own filtered view still includes it.
func TestHalfDayScenario(t *testing.T) {
	repo := &fakeRepo{}
	svc := newScheduleService(repo, 3)

	if _, err := svc.Create(CreateScheduleRequest{
		Type: TypeAMHalfDay,
		Date: "2026-03-10",
	}, "Lee"); err != nil {
		t.Fatal(err)
	}

	view, err := svc.MonthView("2026-03", false, "Kim")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(view.Entries))
	}
	e := view.Entries[0]
	if e.Category != CategoryPersonal || e.Text != "[half-day] Lee" {
		t.Fatalf("entry = %+v, want personal [half-day] Lee", e)
	}

	mine, err := svc.MonthView("2026-03", true, "Lee")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine.Entries) != 1 {
		t.Fatalf("Lee's own view lost the half-day entry: %+v", mine.Entries)
	}
}
