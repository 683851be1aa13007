package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// Display categories. Presentation only, never persisted.
const (
	CategoryPersonal = "personal"
	CategoryShared   = "shared"
	CategoryDeadline = "deadline"
)

// Badge labels shown for personal entries. Both half-day variants collapse
// into one badge; holiday work reads as special duty.
const (
	BadgeHalfDay     = "half-day"
	BadgeSpecialDuty = "special-duty"
)

// TaskDeadline is the slice of a task the calendar needs. Tasks without a
// due date contribute nothing.
type TaskDeadline struct {
	TaskID   uint64
	Title    string
	DueDate  string
	Assignee string
	Status   string
}

// Entry is one renderable calendar line.
type Entry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Text     string `json:"text"`
	FullText string `json:"full_text"`
	Target   string `json:"target"`
	Time     string `json:"time,omitempty"`
	Type     string `json:"type"`
}

type MergeOptions struct {
	// Month restricts output to dates with this "YYYY-MM" prefix; empty
	// keeps everything.
	Month string
	// MineOnly keeps entries whose target contains UserName as a substring
	// or equals the everyone sentinel.
	MineOnly bool
	UserName string
}

func badgeFor(schedType string) string {
	switch schedType {
	case TypeAMHalfDay, TypePMHalfDay:
		return BadgeHalfDay
	case TypeHolidayWork:
		return BadgeSpecialDuty
	default:
		return schedType
	}
}

// Merge unifies schedule events and task deadlines into one display-ready
// list keyed by date.
func Merge(schedules []*Schedule, deadlines []TaskDeadline, opts MergeOptions) []Entry {
	entries := make([]Entry, 0, len(schedules)+len(deadlines))

	for _, s := range schedules {
		target := s.Target
		if target == "" {
			target = TargetEveryone
		}
		e := Entry{
			ID:     fmt.Sprintf("schedule-%d", s.ID),
			Date:   s.Date,
			Target: target,
			Time:   s.Time,
			Type:   s.Type,
		}
		if IsPersonalType(s.Type) {
			e.Category = CategoryPersonal
			e.Text = fmt.Sprintf("[%s] %s", badgeFor(s.Type), target)
			e.FullText = fmt.Sprintf("[%s] %s - %s", s.Type, target, s.Content)
		} else {
			e.Category = CategoryShared
			e.Text = fmt.Sprintf("%s [%s] %s", s.Time, s.Type, s.Content)
			e.FullText = fmt.Sprintf("[%s] %s (%s)", s.Type, s.Content, target)
		}
		entries = append(entries, e)
	}

	for _, d := range deadlines {
		if d.DueDate == "" {
			continue
		}
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("task-%d", d.TaskID),
			Date:     d.DueDate,
			Category: CategoryDeadline,
			Text:     fmt.Sprintf("[task] %s", d.Title),
			FullText: fmt.Sprintf("[due] %s (%s)", d.Title, d.Assignee),
			Target:   d.Assignee,
			Type:     "task",
		})
	}

	filtered := entries[:0]
	for _, e := range entries {
		if opts.Month != "" && !strings.HasPrefix(e.Date, opts.Month) {
			continue
		}
		if opts.MineOnly && !strings.Contains(e.Target, opts.UserName) && e.Target != TargetEveryone {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})
	return filtered
}
