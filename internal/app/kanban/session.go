package kanban

import "errors"

var (
	ErrDragInProgress = errors.New("a drag is already in progress")
	ErrNoActiveDrag   = errors.New("no active drag")
	ErrUnknownCard    = errors.New("unknown card")
)

// DragSession tracks one in-flight drag. At most one card is "in flight" per
// session: Start rejects a second pickup until Drop or Cancel clears the
// active id.
type DragSession struct {
	board    *Board
	activeID uint64
}

func NewDragSession(board *Board) *DragSession {
	return &DragSession{board: board}
}

func (s *DragSession) Board() *Board {
	return s.board
}

func (s *DragSession) ActiveID() uint64 {
	return s.activeID
}

func (s *DragSession) Start(taskID uint64) error {
	if s.activeID != 0 {
		return ErrDragInProgress
	}
	if s.board.Find(taskID) == nil {
		return ErrUnknownCard
	}
	s.activeID = taskID
	return nil
}

// Over applies one drag-over tick against the resolved collision target and
// updates the in-memory board only; nothing is written until Drop.
//
// Target is another card in a different column: the dragged card adopts that
// column and is spliced in just above the target, re-columning and reordering
// in a single step. Same column: positions swap. Target is a column id with
// no card under the pointer: the column changes in place.
func (s *DragSession) Over(overID string) error {
	if s.activeID == 0 {
		return ErrNoActiveDrag
	}
	active := s.board.Find(s.activeID)
	if active == nil {
		return ErrUnknownCard
	}

	if targetID, ok := ParseCardID(overID); ok {
		if targetID == s.activeID {
			return nil
		}
		target := s.board.Find(targetID)
		if target == nil {
			return ErrUnknownCard
		}
		activeIdx := s.board.indexOf(s.activeID)
		overIdx := s.board.indexOf(targetID)
		if active.Column != target.Column {
			active.Column = target.Column
			s.board.move(activeIdx, overIdx-1)
		} else {
			s.board.move(activeIdx, overIdx)
		}
		return nil
	}

	if s.board.hasColumn(overID) && active.Column != overID {
		active.Column = overID
	}
	return nil
}

// Drop ends the session and reports the card's FINAL in-memory column. The
// one authoritative write uses this, never any intermediate column visited
// during drag-over.
func (s *DragSession) Drop() (*Card, error) {
	if s.activeID == 0 {
		return nil, ErrNoActiveDrag
	}
	card := s.board.Find(s.activeID)
	s.activeID = 0
	if card == nil {
		return nil, ErrUnknownCard
	}
	return card, nil
}

func (s *DragSession) Cancel() {
	s.activeID = 0
}
