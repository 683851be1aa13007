package kanban

import "strconv"

// Card is the board's in-memory projection of a task. Version is carried from
// the snapshot so the drop write can be version-checked.
type Card struct {
	TaskID       uint64 `json:"task_id"`
	Title        string `json:"title"`
	Column       string `json:"column"`
	Priority     string `json:"priority"`
	Assignee     string `json:"assignee"`
	DueDate      string `json:"due_date"`
	CommentCount int    `json:"comment_count"`
	Version      uint64 `json:"version"`
}

// Board is the ordered card list a drag session mutates optimistically.
type Board struct {
	cards   []*Card
	columns []string
}

func NewBoard(cards []*Card, columns []string) *Board {
	copied := make([]*Card, len(cards))
	for i, c := range cards {
		cc := *c
		copied[i] = &cc
	}
	return &Board{cards: copied, columns: columns}
}

func (b *Board) Cards() []*Card {
	return b.cards
}

func (b *Board) Columns() []string {
	return b.columns
}

func (b *Board) Find(taskID uint64) *Card {
	for _, c := range b.cards {
		if c.TaskID == taskID {
			return c
		}
	}
	return nil
}

func (b *Board) indexOf(taskID uint64) int {
	for i, c := range b.cards {
		if c.TaskID == taskID {
			return i
		}
	}
	return -1
}

func (b *Board) hasColumn(id string) bool {
	for _, col := range b.columns {
		if col == id {
			return true
		}
	}
	return false
}

// move relocates the card at from to position to, shifting the rest. Same
// splice semantics as dnd-kit's arrayMove, with the target index clamped to
// the list bounds.
func (b *Board) move(from, to int) {
	if from == to || from < 0 || from >= len(b.cards) {
		return
	}
	if to < 0 {
		to = 0
	}
	if to >= len(b.cards) {
		to = len(b.cards) - 1
	}
	card := b.cards[from]
	rest := append(b.cards[:from:from], b.cards[from+1:]...)
	b.cards = append(rest[:to:to], append([]*Card{card}, rest[to:]...)...)
}

// ParseCardID turns a droppable id back into a task id. Returns false for
// column ids.
func ParseCardID(id string) (uint64, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
