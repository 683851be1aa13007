package kanban

import (
	"errors"
	"fmt"
	"sync"

	"backend/internal/apperr"
	"backend/internal/app/task"

	"go.uber.org/zap"
)

// doneVisible is how many done cards a collapsed done column shows.
const doneVisible = 5

// TaskGateway is the slice of the task service the board needs: one read for
// snapshots and the single authoritative status write on drop.
type TaskGateway interface {
	List() ([]*task.Task, error)
	SetStatus(id uint64, newStatus string, version uint64) (*task.Task, error)
}

type Service interface {
	Snapshot(mineOnly bool, userName string) (*BoardResponse, error)
	StartDrag(clientKey string, taskID uint64) error
	DragMove(clientKey string, pointer Point, droppables []Droppable) (*MoveResponse, error)
	Drop(clientKey string) (*DropResponse, error)
	CancelDrag(clientKey string)
}

type service struct {
	tasks   TaskGateway
	logger  *zap.SugaredLogger
	mu      sync.Mutex
	drags   map[string]*DragSession
	columns []string
}

func NewService(tasks TaskGateway, logger *zap.Logger) Service {
	return &service{
		tasks:   tasks,
		logger:  logger.Sugar(),
		drags:   make(map[string]*DragSession),
		columns: task.DefaultColumns(),
	}
}

func (s *service) loadBoard(mineOnly bool, userName string) (*Board, error) {
	all, err := s.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	columns := append([]string{}, s.columns...)
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		seen[col] = true
	}

	cards := make([]*Card, 0, len(all))
	for _, t := range all {
		if mineOnly && t.Assignee != userName {
			continue
		}
		cards = append(cards, &Card{
			TaskID:       t.ID,
			Title:        t.Title,
			Column:       t.Status,
			Priority:     t.Priority,
			Assignee:     t.Assignee,
			DueDate:      t.DueDate,
			CommentCount: len(t.Comments),
			Version:      t.Version,
		})
		// ad-hoc columns stay rendered even if nothing else uses them
		if !seen[t.Status] {
			seen[t.Status] = true
			columns = append(columns, t.Status)
		}
	}
	return NewBoard(cards, columns), nil
}

func (s *service) Snapshot(mineOnly bool, userName string) (*BoardResponse, error) {
	board, err := s.loadBoard(mineOnly, userName)
	if err != nil {
		return nil, err
	}
	return buildResponse(board), nil
}

func (s *service) StartDrag(clientKey string, taskID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.drags[clientKey]; ok && sess.ActiveID() != 0 {
		return ErrDragInProgress
	}
	board, err := s.loadBoard(false, "")
	if err != nil {
		return err
	}
	sess := NewDragSession(board)
	if err := sess.Start(taskID); err != nil {
		return err
	}
	s.drags[clientKey] = sess
	return nil
}

func (s *service) DragMove(clientKey string, pointer Point, droppables []Droppable) (*MoveResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.drags[clientKey]
	if !ok {
		return nil, ErrNoActiveDrag
	}

	overID, hit := ResolveCollision(pointer, droppables)
	if !hit {
		return &MoveResponse{Board: buildResponse(sess.Board())}, nil
	}
	if err := sess.Over(overID); err != nil {
		if errors.Is(err, ErrUnknownCard) {
			// droppable for a card that vanished between ticks, ignore
			return &MoveResponse{OverID: overID, Board: buildResponse(sess.Board())}, nil
		}
		return nil, err
	}
	return &MoveResponse{OverID: overID, Board: buildResponse(sess.Board())}, nil
}

// Drop commits the drag with exactly one status write using the final
// in-memory column. On a lost race or any write failure, a fresh snapshot is
// returned so the caller can reconcile with the source of truth.
func (s *service) Drop(clientKey string) (*DropResponse, error) {
	s.mu.Lock()
	sess, ok := s.drags[clientKey]
	if ok {
		delete(s.drags, clientKey)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNoActiveDrag
	}
	card, err := sess.Drop()
	if err != nil {
		return nil, err
	}

	if _, err := s.tasks.SetStatus(card.TaskID, card.Column, card.Version); err != nil {
		s.logger.Warnw("Drop write rejected, returning fresh board",
			"task_id", card.TaskID,
			"column", card.Column,
			"error", err,
		)
		fresh, snapErr := s.Snapshot(false, "")
		if snapErr != nil {
			return nil, fmt.Errorf("drop failed and board refetch failed: %w", snapErr)
		}
		return &DropResponse{
			TaskID:   card.TaskID,
			Column:   card.Column,
			Conflict: errors.Is(err, apperr.ErrConflict),
			Error:    err.Error(),
			Board:    fresh,
		}, nil
	}

	return &DropResponse{TaskID: card.TaskID, Column: card.Column}, nil
}

func (s *service) CancelDrag(clientKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drags, clientKey)
}

func buildResponse(board *Board) *BoardResponse {
	resp := &BoardResponse{Columns: make([]*ColumnView, 0, len(board.Columns()))}
	byColumn := make(map[string][]*Card)
	for _, c := range board.Cards() {
		byColumn[c.Column] = append(byColumn[c.Column], c)
	}
	for _, col := range board.Columns() {
		cards := byColumn[col]
		if cards == nil {
			cards = []*Card{}
		}
		view := &ColumnView{ID: col, Cards: cards, Total: len(cards)}
		if col == task.StatusDone && len(cards) > doneVisible {
			view.Collapsed = true
			view.Visible = doneVisible
		} else {
			view.Visible = len(cards)
		}
		resp.Columns = append(resp.Columns, view)
	}
	return resp
}
