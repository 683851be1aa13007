package kanban

// ColumnView groups cards per column for rendering. Collapsed/Visible only
// describe how the done column is displayed; they carry no persistence
// meaning.
type ColumnView struct {
	ID        string  `json:"id"`
	Cards     []*Card `json:"cards"`
	Total     int     `json:"total"`
	Visible   int     `json:"visible"`
	Collapsed bool    `json:"collapsed,omitempty"`
}

type BoardResponse struct {
	Columns []*ColumnView `json:"columns"`
}

type MoveResponse struct {
	OverID string         `json:"over_id,omitempty"`
	Board  *BoardResponse `json:"board"`
}

type DropResponse struct {
	TaskID   uint64         `json:"task_id"`
	Column   string         `json:"column"`
	Conflict bool           `json:"conflict,omitempty"`
	Error    string         `json:"error,omitempty"`
	Board    *BoardResponse `json:"board,omitempty"`
}

type StartDragRequest struct {
	TaskID uint64 `json:"task_id" binding:"required"`
}

type DragMoveRequest struct {
	Pointer    Point       `json:"pointer"`
	Droppables []Droppable `json:"droppables"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
