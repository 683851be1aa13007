package kanban

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/kanban", handler.GetBoard)
	rg.POST("/kanban/drag/start", handler.StartDrag)
	rg.POST("/kanban/drag/move", handler.DragMove)
	rg.POST("/kanban/drag/drop", handler.Drop)
	rg.POST("/kanban/drag/cancel", handler.CancelDrag)
}
