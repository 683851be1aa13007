package post

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
	Create(req CreatePostRequest, authorName string) (*Post, error)
	Get(id uint64) (*Post, error)
	List(tag string) ([]*Post, error)
	Update(id uint64, req UpdatePostRequest) error
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

func (s *service) Create(req CreatePostRequest, authorName string) (*Post, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title", "is required")
	}
	if req.Content == "" {
		return nil, apperr.Validation("content", "is required")
	}
	tag := req.Tag
	if tag == "" {
		tag = TagGeneral
	}
	if !ValidTag(tag) {
		return nil, apperr.Validation("tag", "must be general, notice, urgent or issue")
	}

	p := &Post{
		Tag:        tag,
		Title:      req.Title,
		Content:    req.Content,
		Author:     authorName,
		Attachment: req.Attachment,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.activity.Log(authorName, fmt.Sprintf("posted [%s]", p.Title))
	s.eventBus.Publish("post_created", map[string]interface{}{"post_id": p.ID, "tag": p.Tag})
	return p, nil
}

// Get bumps the view counter; a failed bump never blocks the read.
func (s *service) Get(id uint64) (*Post, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	if err := s.repo.IncrementViews(id); err != nil {
		s.logger.Warnw("Failed to increment post views", "post_id", id, "error", err)
	} else {
		p.Views++
	}
	return p, nil
}

func (s *service) List(tag string) ([]*Post, error) {
	if tag != "" && !ValidTag(tag) {
		return nil, apperr.Validation("tag", "must be general, notice, urgent or issue")
	}
	return s.repo.List(tag)
}

func (s *service) Update(id uint64, req UpdatePostRequest) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperr.ErrNotFound
	}
	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Content != "" {
		fields["content"] = req.Content
	}
	if req.Attachment != "" {
		fields["attachment"] = req.Attachment
	}
	if req.Tag != "" {
		if !ValidTag(req.Tag) {
			return apperr.Validation("tag", "must be general, notice, urgent or issue")
		}
		fields["tag"] = req.Tag
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.repo.UpdateFields(id, fields); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	s.eventBus.Publish("post_updated", map[string]interface{}{"post_id": id})
	return nil
}

func (s *service) Delete(id uint64, userName string) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	if err := s.repo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	s.activity.Log(userName, fmt.Sprintf("deleted post [%s]", p.Title))
	s.eventBus.Publish("post_deleted", map[string]interface{}{"post_id": id})
	return nil
}
