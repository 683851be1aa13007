package comment

import (
	"fmt"

	"backend/internal/apperr"
)

type Service interface {
	Create(kind string, parentID uint64, authorName, content string) (*Comment, error)
	Delete(id uint64) error
	ListByParent(kind string, parentID uint64) ([]*Comment, error)
	ListByKind(kind string) ([]*Comment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(kind string, parentID uint64, authorName, content string) (*Comment, error) {
	if !ValidParentKind(kind) {
		return nil, apperr.Validation("parent_kind", "must be task, post or archive")
	}
	if content == "" {
		return nil, apperr.Validation("content", "is required")
	}
	exists, err := s.repo.ParentExists(kind, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check comment parent: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("comment parent %s/%d: %w", kind, parentID, apperr.ErrNotFound)
	}

	c := &Comment{
		ParentKind: kind,
		ParentID:   parentID,
		AuthorName: authorName,
		Content:    content,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return c, nil
}

func (s *service) Delete(id uint64) error {
	return s.repo.Delete(id)
}

func (s *service) ListByParent(kind string, parentID uint64) ([]*Comment, error) {
	return s.repo.ListByParent(kind, parentID)
}

func (s *service) ListByKind(kind string) ([]*Comment, error) {
	return s.repo.ListByKind(kind)
}
