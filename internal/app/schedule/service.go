package schedule

import (
	"fmt"
	"strings"

	"backend/internal/apperr"
	"backend/internal/app/task"
	"backend/internal/utils"

	"go.uber.org/zap"
)

// MemberCounter reports the team size; the shared-event target rule needs it
// to decide when a selection means "everyone".
type MemberCounter interface {
	Count() (int64, error)
}

// TaskSource feeds due dates into the month view.
type TaskSource interface {
	List() ([]*task.Task, error)
}

type ActivityLog interface {
	Log(userName, action string)
}

type Service interface {
	Create(req CreateScheduleRequest, authorName string) (*Schedule, error)
	Delete(id uint64) error
	List() ([]*Schedule, error)
	MonthView(month string, mineOnly bool, userName string) (*MonthViewResponse, error)
}

type service struct {
	repo     Repository
	members  MemberCounter
	tasks    TaskSource
	activity ActivityLog
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, members MemberCounter, tasks TaskSource, activity ActivityLog, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		members:  members,
		tasks:    tasks,
		activity: activity,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

// Create persists an event with the dual target rule: personal events are
// always saved under the literal member name(s), never the everyone
// sentinel, no matter how many members exist; shared events collapse a
// full selection (or none) to the sentinel. This asymmetry is a business
// rule, not an accident.
func (s *service) Create(req CreateScheduleRequest, authorName string) (*Schedule, error) {
	content := req.Content
	if IsPersonalType(req.Type) && content == "" {
		content = req.Type
	}
	if content == "" {
		return nil, apperr.Validation("content", "is required")
	}
	if req.Date == "" {
		return nil, apperr.Validation("date", "is required")
	}

	eventTime := req.Time
	if eventTime == "" {
		eventTime = "09:00"
		if req.Type == TypePMHalfDay {
			eventTime = "14:00"
		}
	}

	target, err := s.resolveTarget(req.Type, req.Targets, authorName)
	if err != nil {
		return nil, err
	}

	sched := &Schedule{
		Type:    req.Type,
		SubType: req.SubType,
		Content: content,
		Date:    req.Date,
		Time:    eventTime,
		Target:  target,
	}
	if err := s.repo.Create(sched); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.activity.Log(authorName, fmt.Sprintf("added calendar event [%s]", content))
	s.eventBus.Publish("schedule_created", map[string]interface{}{"schedule_id": sched.ID, "date": sched.Date})
	return sched, nil
}

func (s *service) resolveTarget(schedType string, selected []string, authorName string) (string, error) {
	if IsPersonalType(schedType) {
		if len(selected) == 0 {
			return authorName, nil
		}
		return strings.Join(selected, ", "), nil
	}

	if len(selected) == 0 {
		return TargetEveryone, nil
	}
	total, err := s.members.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count members: %w", err)
	}
	if int64(len(selected)) == total {
		return TargetEveryone, nil
	}
	return strings.Join(selected, ", "), nil
}

func (s *service) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *service) List() ([]*Schedule, error) {
	return s.repo.List()
}

func (s *service) MonthView(month string, mineOnly bool, userName string) (*MonthViewResponse, error) {
	var schedules []*Schedule
	var err error
	if month != "" {
		schedules, err = s.repo.ListByMonth(month)
	} else {
		schedules, err = s.repo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	var deadlines []TaskDeadline
	tasks, err := s.tasks.List()
	if err != nil {
		// read failure degrades to a calendar without deadlines
		s.logger.Warnw("Failed to load tasks for calendar", "error", err)
	} else {
		deadlines = make([]TaskDeadline, 0, len(tasks))
		for _, t := range tasks {
			deadlines = append(deadlines, TaskDeadline{
				TaskID:   t.ID,
				Title:    t.Title,
				DueDate:  t.DueDate,
				Assignee: t.Assignee,
				Status:   t.Status,
			})
		}
	}

	entries := Merge(schedules, deadlines, MergeOptions{
		Month:    month,
		MineOnly: mineOnly,
		UserName: userName,
	})

	holidays, err := s.repo.ListHolidays()
	if err != nil {
		s.logger.Warnw("Failed to load holidays", "error", err)
		holidays = []*Holiday{}
	}
	return &MonthViewResponse{Entries: entries, Holidays: holidays}, nil
}
