package archive

import (
	"fmt"

	"backend/internal/apperr"
	"backend/internal/utils"

	"go.uber.org/zap"
)

type ActivityLog interface {
	Log(userName, action string)
}

type Service interface {
	Create(req CreateArchiveRequest, authorName string) (*Archive, error)
	Get(id uint64) (*Archive, error)
	List(category, search string) ([]*Archive, error)
	Update(id uint64, req UpdateArchiveRequest) error
	Delete(id uint64, userName string) error
}

type service struct {
	repo     Repository
	activity ActivityLog
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, activity ActivityLog, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		activity: activity,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) Create(req CreateArchiveRequest, authorName string) (*Archive, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title", "is required")
	}
	category := req.Category
	if category == "" {
		category = "etc"
	}

	a := &Archive{
		Category: category,
		Title:    req.Title,
		Link:     req.Link,
		Content:  req.Content,
		Author:   authorName,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}

	s.activity.Log(authorName, fmt.Sprintf("archived document [%s]", a.Title))
	s.eventBus.Publish("archive_created", map[string]interface{}{"archive_id": a.ID})
	return a, nil
}

func (s *service) Get(id uint64) (*Archive, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

func (s *service) List(category, search string) ([]*Archive, error) {
	return s.repo.List(category, search)
}

func (s *service) Update(id uint64, req UpdateArchiveRequest) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperr.ErrNotFound
	}
	fields := map[string]interface{}{}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Link != "" {
		fields["link"] = req.Link
	}
	if req.Content != "" {
		fields["content"] = req.Content
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.repo.UpdateFields(id, fields); err != nil {
		return fmt.Errorf("failed to update archive: %w", err)
	}
	s.eventBus.Publish("archive_updated", map[string]interface{}{"archive_id": id})
	return nil
}

func (s *service) Delete(id uint64, userName string) error {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	if err := s.repo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete archive: %w", err)
	}
	s.activity.Log(userName, fmt.Sprintf("deleted archived document [%s]", a.Title))
	s.eventBus.Publish("archive_deleted", map[string]interface{}{"archive_id": id})
	return nil
}
