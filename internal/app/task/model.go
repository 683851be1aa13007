package task

import (
	"time"

	"backend/internal/app/comment"
)

// Canonical kanban columns. The column set is caller-defined: a task may hold
// any non-empty status string, these four are just the defaults the board
// renders.
const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusStopped    = "stopped"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

func DefaultColumns() []string {
	return []string{StatusWaiting, StatusInProgress, StatusDone, StatusStopped}
}

type Task struct {
	ID           uint64  `json:"id" gorm:"primaryKey"`
	Title        string  `json:"title" gorm:"not null"`
	Status       string  `json:"status" gorm:"not null;default:'waiting';index"`
	Priority     string  `json:"priority" gorm:"not null;default:'normal'"`
	Assignee     string  `json:"assignee"`
	StartDate    string  `json:"start_date" gorm:"size:10"`
	DueDate      string  `json:"due_date" gorm:"size:10;index"`
	Content      string  `json:"content"`
	ProjectID    *uint64 `json:"project_id,omitempty" gorm:"index"`
	RelatedDocID *uint64 `json:"related_doc_id,omitempty"`
	// Version is the compare-and-swap token for status writes: concurrent
	// drags of the same card are detected instead of silently lost.
	Version   uint64    `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []*comment.Comment `json:"comments" gorm:"-"`
}

func (t *Task) Done() bool {
	return t.Status == StatusDone
}

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Priority     string  `json:"priority"`
	Assignee     string  `json:"assignee"`
	StartDate    string  `json:"start_date"`
	DueDate      string  `json:"due_date"`
	Content      string  `json:"content"`
	ProjectID    *uint64 `json:"project_id"`
	RelatedDocID *uint64 `json:"related_doc_id"`
}

// UpdatePatch carries a partial edit. Only non-zero fields reach the UPDATE,
// so a field can never be cleared back to empty through this path. The
// original system had the same asymmetry and it is preserved on purpose.
type UpdatePatch struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Priority     string  `json:"priority"`
	Assignee     string  `json:"assignee"`
	StartDate    string  `json:"start_date"`
	DueDate      string  `json:"due_date"`
	ProjectID    *uint64 `json:"project_id"`
	RelatedDocID *uint64 `json:"related_doc_id"`
}

type SetStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Version uint64 `json:"version"`
}

type TimelineRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	DueDate   string `json:"due_date" binding:"required"`
}

type TaskListResponse struct {
	Tasks []*Task `json:"tasks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
