package project

import (
	"net/http"
	"strconv"

	"backend/internal/apperr"
	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListProjects(c *gin.Context)
	GetProject(c *gin.Context)
	CreateProject(c *gin.Context)
	UpdateProject(c *gin.Context)
	DeleteProject(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List projects with their todos
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectListResponse
// @Router /api/projects [get]
func (h *handler) ListProjects(c *gin.Context) {
	projects, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, ProjectListResponse{Projects: projects})
}

func (h *handler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}
	p, err := h.service.Get(id)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Success 201 {object} Project
// @Failure 400 {object} ErrorResponse
// @Router /api/projects [post]
func (h *handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
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

func (h *handler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}
	var req UpdateProjectRequest
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

func (h *handler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}
	me := member.CurrentMember(c)
	if err := h.service.Delete(id, me.Name); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
