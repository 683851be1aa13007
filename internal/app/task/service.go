package task

import (
	"fmt"

	"backend/internal/apperr"
	"backend/internal/app/comment"
	"backend/internal/utils"

	"go.uber.org/zap"
)

// ActivityLog is the slice of the activity service this module needs.
type ActivityLog interface {
	Log(userName, action string)
}

// CommentSource loads comments so List can attach them per task.
type CommentSource interface {
	ListByKind(kind string) ([]*comment.Comment, error)
}

type Service interface {
	Create(req CreateTaskRequest, actor string) (*Task, error)
	Update(id uint64, patch UpdatePatch, actor string) (*Task, error)
	SetStatus(id uint64, newStatus string, version uint64) (*Task, error)
	ToggleDone(id uint64) (*Task, error)
	UpdateTimeline(id uint64, startDate, dueDate string) error
	Delete(id uint64, actor string) error
	GetByID(id uint64) (*Task, error)
	List() ([]*Task, error)
	ListByProject(projectID uint64) ([]*Task, error)
}

type service struct {
	repo     Repository
	comments CommentSource
	activity ActivityLog
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, comments CommentSource, activity ActivityLog, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		comments: comments,
		activity: activity,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) Create(req CreateTaskRequest, actor string) (*Task, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title", "is required")
	}
	priority := req.Priority
	switch priority {
	case PriorityLow, PriorityNormal, PriorityHigh:
	case "":
		priority = PriorityNormal
	default:
		return nil, apperr.Validation("priority", "must be low, normal or high")
	}
	startDate := req.StartDate
	if startDate == "" {
		startDate = req.DueDate
	}

	t := &Task{
		Title:        req.Title,
		Status:       StatusWaiting,
		Priority:     priority,
		Assignee:     req.Assignee,
		StartDate:    startDate,
		DueDate:      req.DueDate,
		Content:      req.Content,
		ProjectID:    req.ProjectID,
		RelatedDocID: req.RelatedDocID,
		Version:      1,
	}
	if err := s.repo.Create(t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.activity.Log(actor, fmt.Sprintf("created task [%s]", t.Title))
	s.eventBus.Publish("task_created", map[string]interface{}{"task_id": t.ID, "title": t.Title})
	return t, nil
}

// Update applies a partial edit. Fields left at their zero value are not
// touched, so this path cannot clear a field to empty.
func (s *service) Update(id uint64, patch UpdatePatch, actor string) (*Task, error) {
	fields := map[string]interface{}{}
	if patch.Title != "" {
		fields["title"] = patch.Title
	}
	if patch.Content != "" {
		fields["content"] = patch.Content
	}
	if patch.Priority != "" {
		fields["priority"] = patch.Priority
	}
	if patch.Assignee != "" {
		fields["assignee"] = patch.Assignee
	}
	if patch.StartDate != "" {
		fields["start_date"] = patch.StartDate
	}
	if patch.DueDate != "" {
		fields["due_date"] = patch.DueDate
	}
	if patch.ProjectID != nil {
		fields["project_id"] = *patch.ProjectID
	}
	if patch.RelatedDocID != nil {
		fields["related_doc_id"] = *patch.RelatedDocID
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(id, fields); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	title := patch.Title
	if title == "" {
		title = t.Title
	}
	s.activity.Log(actor, fmt.Sprintf("edited task [%s]", title))
	s.eventBus.Publish("task_updated", map[string]interface{}{"task_id": id})
	return t, nil
}

// SetStatus is idempotent when the status already holds; otherwise it issues
// exactly one version-checked write. A lost race surfaces as ErrConflict and
// the caller refetches the board to reconcile.
func (s *service) SetStatus(id uint64, newStatus string, version uint64) (*Task, error) {
	if newStatus == "" {
		return nil, apperr.Validation("status", "is required")
	}
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, apperr.ErrNotFound)
	}
	if t.Status == newStatus {
		return t, nil
	}
	if version == 0 {
		version = t.Version
	}

	affected, err := s.repo.UpdateStatusCAS(id, newStatus, version)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("task %d status write: %w", id, apperr.ErrConflict)
	}

	s.eventBus.Publish("task_status_changed", map[string]interface{}{
		"task_id": id,
		"status":  newStatus,
	})
	return s.repo.GetByID(id)
}

func (s *service) ToggleDone(id uint64) (*Task, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, apperr.ErrNotFound)
	}
	next := StatusDone
	if t.Done() {
		next = StatusWaiting
	}
	return s.SetStatus(id, next, t.Version)
}

func (s *service) UpdateTimeline(id uint64, startDate, dueDate string) error {
	if startDate == "" || dueDate == "" {
		return apperr.Validation("timeline", "start_date and due_date are required")
	}
	err := s.repo.UpdateFields(id, map[string]interface{}{
		"start_date": startDate,
		"due_date":   dueDate,
	})
	if err != nil {
		return fmt.Errorf("failed to update task timeline: %w", err)
	}
	s.eventBus.Publish("task_updated", map[string]interface{}{"task_id": id})
	return nil
}

func (s *service) Delete(id uint64, actor string) error {
	if err := s.repo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.activity.Log(actor, "deleted a task")
	s.eventBus.Publish("task_deleted", map[string]interface{}{"task_id": id})
	return nil
}

func (s *service) GetByID(id uint64) (*Task, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, apperr.ErrNotFound)
	}
	s.attachComments([]*Task{t})
	return t, nil
}

func (s *service) List() ([]*Task, error) {
	tasks, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	s.attachComments(tasks)
	return tasks, nil
}

func (s *service) ListByProject(projectID uint64) ([]*Task, error) {
	return s.repo.ListByProject(projectID)
}

// attachComments loads every task comment once and distributes them, instead
// of one query per task.
func (s *service) attachComments(tasks []*Task) {
	if len(tasks) == 0 || s.comments == nil {
		return
	}
	all, err := s.comments.ListByKind(comment.ParentTask)
	if err != nil {
		s.logger.Warnw("Failed to load task comments", "error", err)
		return
	}
	byParent := make(map[uint64][]*comment.Comment, len(all))
	for _, c := range all {
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}
	for _, t := range tasks {
		t.Comments = byParent[t.ID]
		if t.Comments == nil {
			t.Comments = []*comment.Comment{}
		}
	}
}
