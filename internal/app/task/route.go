package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/tasks", handler.ListTasks)
	rg.POST("/tasks", handler.CreateTask)
	rg.PATCH("/tasks/:id", handler.UpdateTask)
	rg.PATCH("/tasks/:id/status", handler.SetStatus)
	rg.PATCH("/tasks/:id/toggle", handler.ToggleDone)
	rg.PATCH("/tasks/:id/timeline", handler.UpdateTimeline)
	rg.DELETE("/tasks/:id", handler.DeleteTask)
}
