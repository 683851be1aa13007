package quicklink

import (
	"errors"
	"fmt"

	"backend/internal/apperr"
)

var ErrForbidden = errors.New("admin role required")

type Service interface {
	Create(req CreateQuickLinkRequest, isAdmin bool) (*QuickLink, error)
	List() ([]*QuickLink, error)
	Delete(id uint64, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(req CreateQuickLinkRequest, isAdmin bool) (*QuickLink, error) {
	if !isAdmin {
		return nil, ErrForbidden
	}
	if req.Name == "" {
		return nil, apperr.Validation("name", "is required")
	}
	if req.URL == "" {
		return nil, apperr.Validation("url", "is required")
	}
	l := &QuickLink{Name: req.Name, URL: req.URL}
	if err := s.repo.Create(l); err != nil {
		return nil, fmt.Errorf("failed to create quick link: %w", err)
	}
	return l, nil
}

func (s *service) List() ([]*QuickLink, error) {
	return s.repo.List()
}

func (s *service) Delete(id uint64, isAdmin bool) error {
	if !isAdmin {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}
