package quicklink

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/quicklinks", handler.ListQuickLinks)
	rg.POST("/quicklinks", handler.CreateQuickLink)
	rg.DELETE("/quicklinks/:id", handler.DeleteQuickLink)
}
