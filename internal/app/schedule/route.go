package schedule

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/calendar", handler.MonthView)
	rg.POST("/schedules", handler.CreateSchedule)
	rg.DELETE("/schedules/:id", handler.DeleteSchedule)
}
