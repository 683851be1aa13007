package schedule

import "testing"

func TestMergeClassification(t *testing.T) {
	schedules := []*Schedule{
		{ID: 1, Type: TypeAnnualLeave, Content: "annual_leave", Date: "2026-03-10", Time: "09:00", Target: "Kim"},
		{ID: 2, Type: TypeMeeting, Content: "sprint review", Date: "2026-03-11", Time: "14:00", Target: TargetEveryone},
	}
	deadlines := []TaskDeadline{
		{TaskID: 5, Title: "ship release", DueDate: "2026-03-12", Assignee: "Lee"},
	}

	entries := Merge(schedules, deadlines, MergeOptions{})
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Category != CategoryPersonal {
		t.Fatalf("first category = %q, want personal", entries[0].Category)
	}
	if entries[1].Category != CategoryShared {
		t.Fatalf("second category = %q, want shared", entries[1].Category)
	}
	if entries[2].Category != CategoryDeadline {
		t.Fatalf("third category = %q, want deadline", entries[2].Category)
	}
}

func TestMergePersonalTextShowsBadgeAndTarget(t *testing.T) {
	schedules := []*Schedule{
		{ID: 1, Type: TypeAMHalfDay, Content: "am_half_day", Date: "2026-03-10", Time: "09:00", Target: "Lee"},
	}
	entries := Merge(schedules, nil, MergeOptions{})
	if entries[0].Text != "[half-day] Lee" {
		t.Fatalf("text = %q, want [half-day] Lee", entries[0].Text)
	}
}

func TestMergeSharedTextShowsTimeTypeContent(t *testing.T) {
	schedules := []*Schedule{
		{ID: 1, Type: TypeMeeting, Content: "standup", Date: "2026-03-10", Time: "09:30", Target: TargetEveryone},
	}
	entries := Merge(schedules, nil, MergeOptions{})
	if entries[0].Text != "09:30 [meeting] standup" {
		t.Fatalf("text = %q, want 09:30 [meeting] standup", entries[0].Text)
	}
}

func TestBadgeCollapse(t *testing.T) {
	cases := map[string]string{
		TypeAMHalfDay:    BadgeHalfDay,
		TypePMHalfDay:    BadgeHalfDay,
		TypeHolidayWork:  BadgeSpecialDuty,
		TypeAnnualLeave:  TypeAnnualLeave,
		TypeBusinessTrip: TypeBusinessTrip,
	}
	for in, want := range cases {
		if got := badgeFor(in); got != want {
			t.Errorf("badgeFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeDeadlineWithoutDueDateDropped(t *testing.T) {
	deadlines := []TaskDeadline{
		{TaskID: 1, Title: "no due date", DueDate: ""},
		{TaskID: 2, Title: "dated", DueDate: "2026-03-15"},
	}
	entries := Merge(nil, deadlines, MergeOptions{})
	if len(entries) != 1 || entries[0].Text != "[task] dated" {
		t.Fatalf("entries = %+v, want only the dated task", entries)
	}
}

func TestMergeMonthFilter(t *testing.T) {
	schedules := []*Schedule{
		{ID: 1, Type: TypeMeeting, Content: "in march", Date: "2026-03-10", Time: "09:00"},
		{ID: 2, Type: TypeMeeting, Content: "in april", Date: "2026-04-01", Time: "09:00"},
	}
	entries := Merge(schedules, nil, MergeOptions{Month: "2026-03"})
	if len(entries) != 1 || entries[0].Date != "2026-03-10" {
		t.Fatalf("entries = %+v, want only march", entries)
	}
}

func TestMergeMineOnlyKeepsSubstringAndSentinel(t *testing.T) {
	schedules := []*Schedule{
		{ID: 1, Type: TypeAnnualLeave, Content: "x", Date: "2026-03-10", Time: "09:00", Target: "Kim, Lee"},
		{ID: 2, Type: TypeAnnualLeave, Content: "x", Date: "2026-03-11", Time: "09:00", Target: "Park"},
		{ID: 3, Type: TypeMeeting, Content: "all hands", Date: "2026-03-12", Time: "09:00", Target: TargetEveryone},
	}
	entries := Merge(schedules, nil, MergeOptions{MineOnly: true, UserName: "Lee"})
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (joined target + sentinel)", len(entries))
	}
	if entries[0].ID != "schedule-1" || entries[1].ID != "schedule-3" {
		t.Fatalf("kept %q and %q, want schedule-1 and schedule-3", entries[0].ID, entries[1].ID)
	}
}

func TestMergeSortedByDateThenTime(t *testing.T) {
	schedules := []*Schedule{
		{ID: 1, Type: TypeMeeting, Content: "late", Date: "2026-03-10", Time: "15:00"},
		{ID: 2, Type: TypeMeeting, Content: "early", Date: "2026-03-10", Time: "09:00"},
		{ID: 3, Type: TypeMeeting, Content: "previous day", Date: "2026-03-09", Time: "18:00"},
	}
	entries := Merge(schedules, nil, MergeOptions{})
	want := []string{"schedule-3", "schedule-2", "schedule-1"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("order[%d] = %q, want %q", i, entries[i].ID, id)
		}
	}
}
