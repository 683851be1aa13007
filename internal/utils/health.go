package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthStatus struct {
	Status     string      `json:"status"`
	Timestamp  time.Time   `json:"timestamp"`
	Components []Component `json:"components"`
}

type Component struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthChecker struct {
	DB    *gorm.DB
	Redis *redis.Client
}

const checkTimeout = 2 * time.Second

// Check pings every backing store. A single failing component degrades the
// overall status but never errors the endpoint itself.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}

	if h.DB != nil {
		status.add("postgres", func(ctx context.Context) error {
			sqlDB, err := h.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}, ctx)
	}

	if h.Redis != nil {
		status.add("redis", func(ctx context.Context) error {
			return h.Redis.Ping(ctx).Err()
		}, ctx)
	}

	return status
}

func (s *HealthStatus) add(name string, ping func(context.Context) error, ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	c := Component{Name: name, Status: "up"}
	if err := ping(ctx); err != nil {
		c.Status = "down"
		c.Message = err.Error()
		s.Status = "degraded"
	}
	s.Components = append(s.Components, c)
}
