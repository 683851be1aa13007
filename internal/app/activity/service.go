package activity

import "go.uber.org/zap"

type Service interface {
	Log(userName, action string)
	Recent(limit int) ([]*Activity, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger.Sugar()}
}

// Log is best-effort: a failed log entry must never fail the mutation that
// produced it.
func (s *service) Log(userName, action string) {
	if userName == "" {
		userName = "unknown"
	}
	if err := s.repo.Create(&Activity{UserName: userName, Action: action}); err != nil {
		s.logger.Warnw("Failed to record activity", "user", userName, "action", action, "error", err)
	}
}

func (s *service) Recent(limit int) ([]*Activity, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.repo.Recent(limit)
}
