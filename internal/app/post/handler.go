package post

import (
	"net/http"
	"strconv"

	"backend/internal/apperr"
	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListPosts(c *gin.Context)
	GetPost(c *gin.Context)
	CreatePost(c *gin.Context)
	UpdatePost(c *gin.Context)
	DeletePost(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List bulletin posts
// @Description Newest first; ?tag= filters by tag
// @Tags Posts
// @Produce json
// @Success 200 {object} PostListResponse
// @Router /api/posts [get]
func (h *handler) ListPosts(c *gin.Context) {
	posts, err := h.service.List(c.Query("tag"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, PostListResponse{Posts: posts})
}

// @Summary Read a post
// @Description Increments the view counter
// @Tags Posts
// @Produce json
// @Success 200 {object} Post
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/{id} [get]
func (h *handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
		return
	}
	p, err := h.service.Get(id)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: "post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := member.CurrentMember(c)
	p, err := h.service.Create(req, me.Name)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.service.Update(id, req); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

func (h *handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
		return
	}
	me := member.CurrentMember(c)
	if err := h.service.Delete(id, me.Name); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
