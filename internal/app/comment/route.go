package comment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/comments", handler.ListComments)
	rg.POST("/comments", handler.CreateComment)
	rg.DELETE("/comments/:id", handler.DeleteComment)
}
