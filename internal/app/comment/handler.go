package comment

import (
	"net/http"
	"strconv"

	"backend/internal/apperr"
	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
	ListComments(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create a comment
// @Description Attach a comment to a task, post or archive document
// @Tags Comment
// @Accept json
// @Produce json
// @Success 201 {object} Comment
// @Failure 400 {object} ErrorResponse
// @Router /api/comments [post]
func (h *handler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := member.CurrentMember(c)

	created, err := h.service.Create(req.ParentKind, req.ParentID, me.Name, req.Content)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *handler) ListComments(c *gin.Context) {
	kind := c.Query("parent_kind")
	parentID, err := strconv.ParseUint(c.Query("parent_id"), 10, 64)
	if err != nil || !ValidParentKind(kind) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "parent_kind and parent_id are required"})
		return
	}
	comments, err := h.service.ListByParent(kind, parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
