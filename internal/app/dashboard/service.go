package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backend/internal/app/activity"
	"backend/internal/app/member"
	"backend/internal/app/quicklink"
	"backend/internal/app/task"
	"backend/internal/providers/redis"
	"backend/internal/utils"

	"go.uber.org/zap"
)

const cacheKey = "dashboard:summary"

type TaskSource interface {
	List() ([]*task.Task, error)
}

type MemberSource interface {
	List() ([]*member.Member, error)
}

type ActivitySource interface {
	Recent(limit int) ([]*activity.Activity, error)
}

type LinkSource interface {
	List() ([]*quicklink.QuickLink, error)
}

// Presence exposes the hub's live view of connected members.
type Presence interface {
	OnlineIDs() []string
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	tasks      TaskSource
	members    MemberSource
	activities ActivitySource
	links      LinkSource
	presence   Presence
	cache      *redis.RedisProvider
	cacheTTL   time.Duration
	logger     *zap.SugaredLogger
}

func NewService(tasks TaskSource, members MemberSource, activities ActivitySource, links LinkSource, presence Presence, cache *redis.RedisProvider, cacheTTL time.Duration, eventBus *utils.EventBus, logger *zap.Logger) Service {
	s := &service{
		tasks:      tasks,
		members:    members,
		activities: activities,
		links:      links,
		presence:   presence,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger.Sugar(),
	}

	// Only task writes move the headline numbers, so only task events
	// invalidate the cache. Everything else ages out with the TTL.
	for _, event := range []string{"task_created", "task_updated", "task_status_changed", "task_deleted"} {
		eventBus.Subscribe(event, func(utils.Event) { s.invalidate() })
	}
	return s
}

func (s *service) invalidate() {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warnw("Failed to invalidate dashboard cache", "error", err)
	}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	summary, err := s.build()
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, summary)
	return summary, nil
}

func (s *service) build() (*Summary, error) {
	tasks, err := s.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	summary := &Summary{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Done() {
			summary.DoneTasks++
			continue
		}
		if t.Status == task.StatusInProgress {
			summary.OngoingCount++
		}
		if t.Priority == task.PriorityHigh {
			summary.UrgentCount++
		}
	}
	if summary.TotalTasks > 0 {
		summary.ProgressRate = summary.DoneTasks * 100 / summary.TotalTasks
	}

	// Read failures below degrade that panel to empty instead of failing
	// the whole dashboard.
	members, err := s.members.List()
	if err != nil {
		s.logger.Warnw("Failed to list members for dashboard", "error", err)
		members = []*member.Member{}
	}
	summary.Members = s.overlayPresence(members)

	activities, err := s.activities.Recent(10)
	if err != nil {
		s.logger.Warnw("Failed to list activities for dashboard", "error", err)
		activities = []*activity.Activity{}
	}
	summary.Activities = activities

	links, err := s.links.List()
	if err != nil {
		s.logger.Warnw("Failed to list quick links for dashboard", "error", err)
		links = []*quicklink.QuickLink{}
	}
	summary.QuickLinks = links

	return summary, nil
}

// overlayPresence trusts the hub over the stored status: a member with an
// open socket shows online, a member without one never does.
func (s *service) overlayPresence(members []*member.Member) []*member.Member {
	online := make(map[string]bool)
	for _, id := range s.presence.OnlineIDs() {
		online[id] = true
	}
	for _, m := range members {
		if m.IsPending() {
			continue
		}
		if online[m.LoginID] {
			m.Status = member.StatusOnline
		} else if m.Status == member.StatusOnline {
			m.Status = member.StatusOffline
		}
	}
	return members
}

func (s *service) fromCache(ctx context.Context) *Summary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		s.logger.Warnw("Failed to decode cached dashboard summary", "error", err)
		return nil
	}
	return &summary
}

func (s *service) toCache(ctx context.Context, summary *Summary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		s.logger.Warnw("Failed to encode dashboard summary", "error", err)
		return
	}
	if err := s.cache.SetWithDefaultTTL(ctx, cacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warnw("Failed to cache dashboard summary", "error", err)
	}
}
