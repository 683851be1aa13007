package schedule

import (
	"net/http"
	"strconv"

	"backend/internal/apperr"
	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	MonthView(c *gin.Context)
	CreateSchedule(c *gin.Context)
	DeleteSchedule(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Calendar month view
// @Description Schedule events and task deadlines merged into one list; ?month=YYYY-MM, ?mine=1
// @Tags Calendar
// @Produce json
// @Success 200 {object} MonthViewResponse
// @Router /api/calendar [get]
func (h *handler) MonthView(c *gin.Context) {
	me := member.CurrentMember(c)
	view, err := h.service.MonthView(c.Query("month"), c.Query("mine") == "1", me.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build calendar"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create a schedule event
// @Tags Calendar
// @Accept json
// @Produce json
// @Success 201 {object} Schedule
// @Failure 400 {object} ErrorResponse
// @Router /api/schedules [post]
func (h *handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := member.CurrentMember(c)

	sched, err := h.service.Create(req, me.Name)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sched)
}

func (h *handler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid schedule id"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
