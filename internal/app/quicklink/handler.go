package quicklink

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/apperr"
	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListQuickLinks(c *gin.Context)
	CreateQuickLink(c *gin.Context)
	DeleteQuickLink(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

func (h *handler) ListQuickLinks(c *gin.Context) {
	links, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list quick links"})
		return
	}
	c.JSON(http.StatusOK, QuickLinkListResponse{Links: links})
}

func (h *handler) CreateQuickLink(c *gin.Context) {
	var req CreateQuickLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := member.CurrentMember(c)
	l, err := h.service.Create(req, me.IsAdmin())
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *handler) DeleteQuickLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quick link id"})
		return
	}
	me := member.CurrentMember(c)
	if err := h.service.Delete(id, me.IsAdmin()); err != nil {
		if errors.Is(err, ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete quick link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
