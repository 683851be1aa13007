package archive

import (
	"net/http"
	"strconv"

	"backend/internal/apperr"
	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListArchives(c *gin.Context)
	GetArchive(c *gin.Context)
	CreateArchive(c *gin.Context)
	UpdateArchive(c *gin.Context)
	DeleteArchive(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List archived documents
// @Description Newest first; ?category= and ?search= filter the list
// @Tags Archives
// @Produce json
// @Success 200 {object} ArchiveListResponse
// @Router /api/archives [get]
func (h *handler) ListArchives(c *gin.Context) {
	archives, err := h.service.List(c.Query("category"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list archives"})
		return
	}
	c.JSON(http.StatusOK, ArchiveListResponse{Archives: archives})
}

func (h *handler) GetArchive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid archive id"})
		return
	}
	a, err := h.service.Get(id)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: "archive not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *handler) CreateArchive(c *gin.Context) {
	var req CreateArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := member.CurrentMember(c)
	a, err := h.service.Create(req, me.Name)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *handler) UpdateArchive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid archive id"})
		return
	}
	var req UpdateArchiveRequest
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

func (h *handler) DeleteArchive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid archive id"})
		return
	}
	me := member.CurrentMember(c)
	if err := h.service.Delete(id, me.Name); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
