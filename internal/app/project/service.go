package project

import (
	"fmt"

	"backend/internal/apperr"
	"backend/internal/app/task"
	"backend/internal/utils"

	"go.uber.org/zap"
)

// TaskSource exposes the tasks that act as a project's todo list.
type TaskSource interface {
	ListByProject(projectID uint64) ([]*task.Task, error)
}

type ActivityLog interface {
	Log(userName, action string)
}

type Service interface {
	Create(req CreateProjectRequest, authorName string) (*Project, error)
	Get(id uint64) (*Project, error)
	List() ([]*Project, error)
	Update(id uint64, req UpdateProjectRequest) error
	Delete(id uint64, userName string) error
}

type service struct {
	repo     Repository
	tasks    TaskSource
	activity ActivityLog
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, tasks TaskSource, activity ActivityLog, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		tasks:    tasks,
		activity: activity,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) Create(req CreateProjectRequest, authorName string) (*Project, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title", "is required")
	}
	p := &Project{
		Title:  req.Title,
		Author: authorName,
		Period: req.Period,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	p.Todos = []*task.Task{}

	s.activity.Log(authorName, fmt.Sprintf("created project [%s]", p.Title))
	s.eventBus.Publish("project_created", map[string]interface{}{"project_id": p.ID})
	return p, nil
}

func (s *service) Get(id uint64) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	if err := s.attachTodos(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List() ([]*Project, error) {
	projects, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range projects {
		if err := s.attachTodos(p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *service) attachTodos(p *Project) error {
	todos, err := s.tasks.ListByProject(p.ID)
	if err != nil {
		return fmt.Errorf("failed to load project todos: %w", err)
	}
	if todos == nil {
		todos = []*task.Task{}
	}
	p.Todos = todos
	return nil
}

func (s *service) Update(id uint64, req UpdateProjectRequest) error {
	if req.Title == "" {
		return apperr.Validation("title", "is required")
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return apperr.ErrNotFound
	}
	if err := s.repo.Update(id, req.Title, req.Period); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	s.eventBus.Publish("project_updated", map[string]interface{}{"project_id": id})
	return nil
}

// Delete removes the project, its tasks and the comments on those tasks in
// one transaction.
func (s *service) Delete(id uint64, userName string) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	if err := s.repo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.activity.Log(userName, fmt.Sprintf("deleted project [%s]", p.Title))
	s.eventBus.Publish("project_deleted", map[string]interface{}{"project_id": id})
	return nil
}
