package dashboard

import (
	"context"
	"testing"

	"backend/internal/app/activity"
	"backend/internal/app/member"
	"backend/internal/app/quicklink"
	"backend/internal/app/task"
	"backend/internal/utils"

	"go.uber.org/zap"
)

type fakeTasks struct{ items []*task.Task }

func (f *fakeTasks) List() ([]*task.Task, error) { return f.items, nil }

type fakeMembers struct{ items []*member.Member }

func (f *fakeMembers) List() ([]*member.Member, error) { return f.items, nil }

type fakeActivities struct{}

func (fakeActivities) Recent(int) ([]*activity.Activity, error) {
	return []*activity.Activity{}, nil
}

type fakeLinks struct{}

func (fakeLinks) List() ([]*quicklink.QuickLink, error) {
	return []*quicklink.QuickLink{}, nil
}

type fakePresence struct{ online []string }

func (f *fakePresence) OnlineIDs() []string { return f.online }

func newDashboardService(tasks []*task.Task, members []*member.Member, online []string) Service {
	return NewService(
		&fakeTasks{items: tasks},
		&fakeMembers{items: members},
		fakeActivities{},
		fakeLinks{},
		&fakePresence{online: online},
		nil, // no cache in tests
		0,
		utils.NewEventBus(),
		zap.NewNop(),
	)
}

func TestSummaryCounts(t *testing.T) {
	tasks := []*task.Task{
		{ID: 1, Status: task.StatusDone, Priority: task.PriorityHigh},
		{ID: 2, Status: task.StatusInProgress, Priority: task.PriorityHigh},
		{ID: 3, Status: task.StatusInProgress, Priority: task.PriorityNormal},
		{ID: 4, Status: task.StatusWaiting, Priority: task.PriorityLow},
	}
	svc := newDashboardService(tasks, nil, nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalTasks != 4 || summary.DoneTasks != 1 {
		t.Fatalf("totals = %d/%d, want 4 total and 1 done", summary.TotalTasks, summary.DoneTasks)
	}
	if summary.ProgressRate != 25 {
		t.Fatalf("progress = %d, want 25", summary.ProgressRate)
	}
	if summary.OngoingCount != 2 {
		t.Fatalf("ongoing = %d, want 2", summary.OngoingCount)
	}
	// done high-priority tasks are no longer urgent
	if summary.UrgentCount != 1 {
		t.Fatalf("urgent = %d, want 1", summary.UrgentCount)
	}
}

func TestSummaryEmptyBoard(t *testing.T) {
	svc := newDashboardService(nil, nil, nil)
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.ProgressRate != 0 {
		t.Fatalf("progress = %d, want 0 on an empty board", summary.ProgressRate)
	}
}

func TestPresenceOverlayTrustsHub(t *testing.T) {
	members := []*member.Member{
		{ID: 1, LoginID: "kim", Name: "Kim", Status: member.StatusOnline},
		{ID: 2, LoginID: "lee", Name: "Lee", Status: member.StatusOnline},
		{ID: 3, LoginID: "park", Name: "Park", Status: member.StatusAway},
	}
	// only kim has an open socket
	svc := newDashboardService(nil, members, []string{"kim"})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	byLogin := map[string]string{}
	for _, m := range summary.Members {
		byLogin[m.LoginID] = m.Status
	}
	if byLogin["kim"] != member.StatusOnline {
		t.Fatalf("kim = %q, want online", byLogin["kim"])
	}
	if byLogin["lee"] != member.StatusOffline {
		t.Fatalf("lee = %q, want offline without a socket", byLogin["lee"])
	}
	if byLogin["park"] != member.StatusAway {
		t.Fatalf("park = %q, away must survive the overlay", byLogin["park"])
	}
}
