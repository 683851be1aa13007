package member

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/apperr"
	"backend/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// WorkloadSource reports assigned work counts for the workload score.
type WorkloadSource interface {
	CountActiveByAssignee(name string) (int64, error)
	CountOpenTodosByAssignee(name string) (int64, error)
}

type ActivityLog interface {
	Log(userName, action string)
}

var (
	ErrInvalidCredentials = errors.New("invalid login id or password")
	ErrPendingApproval    = errors.New("account is pending admin approval")
	ErrForbidden          = errors.New("admin role required")
)

type Service interface {
	SignUp(req SignUpRequest) (*Member, error)
	SignIn(req SignInRequest) (*SignInResponse, error)
	SignOut(sessionKey string) error
	GetBySessionKey(sessionKey string) (*Member, error)
	Approve(adminID, memberID uint64) error
	UpdateProfile(id uint64, req UpdateProfileRequest) error
	SetStatus(id uint64, status string) error
	List() ([]*Member, error)
	Count() (int64, error)
}

type service struct {
	repo       Repository
	workload   WorkloadSource
	activity   ActivityLog
	eventBus   *utils.EventBus
	sessionTTL time.Duration
	logger     *zap.SugaredLogger
}

func NewService(repo Repository, workload WorkloadSource, activity ActivityLog, eventBus *utils.EventBus, sessionTTL time.Duration, logger *zap.Logger) Service {
	return &service{
		repo:       repo,
		workload:   workload,
		activity:   activity,
		eventBus:   eventBus,
		sessionTTL: sessionTTL,
		logger:     logger.Sugar(),
	}
}

// SignUp registers a member. The very first account becomes an active admin;
// everyone after that starts pending until an admin approves them.
func (s *service) SignUp(req SignUpRequest) (*Member, error) {
	if _, err := s.repo.GetByLoginID(req.LoginID); err == nil {
		return nil, apperr.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	m := &Member{
		LoginID:      req.LoginID,
		PasswordHash: string(hash),
		Name:         req.Name,
		Position:     req.Position,
		Skills:       req.Skills,
		Role:         RoleMember,
		Status:       StatusPending,
	}
	if count == 0 {
		m.Role = RoleAdmin
		m.Status = StatusOffline
	}

	if err := s.repo.Create(m); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.activity.Log(m.Name, "joined the workspace")
	s.eventBus.Publish("member_joined", map[string]interface{}{"member_id": m.ID, "name": m.Name})
	return m, nil
}

func (s *service) SignIn(req SignInRequest) (*SignInResponse, error) {
	m, err := s.repo.GetByLoginID(req.LoginID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if m.IsPending() {
		return nil, ErrPendingApproval
	}

	sess := &Session{
		SessionKey: uuid.NewString(),
		MemberID:   m.ID,
		ExpiresAt:  time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.repo.UpdateFields(m.ID, map[string]interface{}{"status": StatusOnline}); err != nil {
		s.logger.Warnw("Failed to mark member online", "member_id", m.ID, "error", err)
	}
	m.Status = StatusOnline

	s.eventBus.Publish("member_online", map[string]interface{}{"member_id": m.ID})
	return &SignInResponse{SessionKey: sess.SessionKey, Member: m}, nil
}

func (s *service) SignOut(sessionKey string) error {
	sess, err := s.repo.GetSessionByKey(sessionKey)
	if err != nil {
		return apperr.ErrNotFound
	}
	if err := s.repo.DeleteSession(sessionKey); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if err := s.repo.UpdateFields(sess.MemberID, map[string]interface{}{"status": StatusOffline}); err != nil {
		s.logger.Warnw("Failed to mark member offline", "member_id", sess.MemberID, "error", err)
	}
	s.eventBus.Publish("member_offline", map[string]interface{}{"member_id": sess.MemberID})
	return nil
}

func (s *service) GetBySessionKey(sessionKey string) (*Member, error) {
	sess, err := s.repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		_ = s.repo.DeleteSession(sessionKey)
		return nil, apperr.ErrNotFound
	}
	m, err := s.repo.GetByID(sess.MemberID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return m, nil
}

// Approve activates a pending member. Only admins may call it.
func (s *service) Approve(adminID, memberID uint64) error {
	admin, err := s.repo.GetByID(adminID)
	if err != nil {
		return apperr.ErrNotFound
	}
	if !admin.IsAdmin() {
		return ErrForbidden
	}
	m, err := s.repo.GetByID(memberID)
	if err != nil {
		return apperr.ErrNotFound
	}
	if !m.IsPending() {
		return nil
	}
	if err := s.repo.UpdateFields(memberID, map[string]interface{}{"status": StatusOffline}); err != nil {
		return fmt.Errorf("failed to approve member: %w", err)
	}
	s.activity.Log(admin.Name, fmt.Sprintf("approved member [%s]", m.Name))
	s.eventBus.Publish("member_approved", map[string]interface{}{"member_id": memberID})
	return nil
}

func (s *service) UpdateProfile(id uint64, req UpdateProfileRequest) error {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Position != "" {
		fields["position"] = req.Position
	}
	if req.Avatar != "" {
		fields["avatar"] = req.Avatar
	}
	if req.Skills != nil {
		fields["skills"] = req.Skills
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.repo.UpdateFields(id, fields); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	s.eventBus.Publish("member_updated", map[string]interface{}{"member_id": id})
	return nil
}

func (s *service) SetStatus(id uint64, status string) error {
	switch status {
	case StatusOnline, StatusAway, StatusOffline:
	default:
		return apperr.Validation("status", "must be online, away or offline")
	}
	if err := s.repo.UpdateFields(id, map[string]interface{}{"status": status}); err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	s.eventBus.Publish("member_status", map[string]interface{}{"member_id": id, "status": status})
	return nil
}

func (s *service) List() ([]*Member, error) {
	members, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	for _, m := range members {
		m.Workload = s.workloadScore(m.Name)
	}
	return members, nil
}

// workloadScore is 15 points per in-progress task plus 5 per open project
// todo, capped at 100. Read failures count as zero load.
func (s *service) workloadScore(name string) int {
	active, err := s.workload.CountActiveByAssignee(name)
	if err != nil {
		s.logger.Warnw("Failed to count active tasks", "assignee", name, "error", err)
		return 0
	}
	todos, err := s.workload.CountOpenTodosByAssignee(name)
	if err != nil {
		s.logger.Warnw("Failed to count open todos", "assignee", name, "error", err)
		todos = 0
	}
	score := int(active)*15 + int(todos)*5
	if score > 100 {
		score = 100
	}
	return score
}

func (s *service) Count() (int64, error) {
	return s.repo.Count()
}
