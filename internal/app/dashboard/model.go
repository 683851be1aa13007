package dashboard

import (
	"backend/internal/app/activity"
	"backend/internal/app/member"
	"backend/internal/app/quicklink"
)

type Summary struct {
	TotalTasks   int `json:"total_tasks"`
	DoneTasks    int `json:"done_tasks"`
	ProgressRate int `json:"progress_rate"`
	OngoingCount int `json:"ongoing_count"`
	UrgentCount  int `json:"urgent_count"`

	Members    []*member.Member       `json:"members"`
	Activities []*activity.Activity   `json:"activities"`
	QuickLinks []*quicklink.QuickLink `json:"quick_links"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
