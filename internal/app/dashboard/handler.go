package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetSummary(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Workspace dashboard summary
// @Description Task progress, presence, recent activity and quick links in one payload
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Summary
// @Router /api/dashboard [get]
func (h *handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
