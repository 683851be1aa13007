package kanban

import (
	"errors"
	"net/http"

	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetBoard(c *gin.Context)
	StartDrag(c *gin.Context)
	DragMove(c *gin.Context)
	Drop(c *gin.Context)
	CancelDrag(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Board snapshot
// @Description Tasks grouped per column in board order; ?mine=1 keeps only the caller's cards
// @Tags Kanban
// @Produce json
// @Success 200 {object} BoardResponse
// @Router /api/kanban [get]
func (h *handler) GetBoard(c *gin.Context) {
	me := member.CurrentMember(c)
	mineOnly := c.Query("mine") == "1"

	board, err := h.service.Snapshot(mineOnly, me.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *handler) StartDrag(c *gin.Context) {
	var req StartDragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.service.StartDrag(clientKey(c), req.TaskID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrDragInProgress) || errors.Is(err, ErrUnknownCard) {
			status = http.StatusConflict
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dragging": req.TaskID})
}

func (h *handler) DragMove(c *gin.Context) {
	var req DragMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := h.service.DragMove(clientKey(c), req.Pointer, req.Droppables)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoActiveDrag) {
			status = http.StatusConflict
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Commit a drag
// @Description One authoritative status write using the final column; a conflict returns a fresh board to reconcile against
// @Tags Kanban
// @Produce json
// @Success 200 {object} DropResponse
// @Router /api/kanban/drag/drop [post]
func (h *handler) Drop(c *gin.Context) {
	resp, err := h.service.Drop(clientKey(c))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoActiveDrag) {
			status = http.StatusConflict
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CancelDrag(c *gin.Context) {
	h.service.CancelDrag(clientKey(c))
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func clientKey(c *gin.Context) string {
	return member.CurrentSessionKey(c)
}
