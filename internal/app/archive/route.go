package archive

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/archives", handler.ListArchives)
	rg.GET("/archives/:id", handler.GetArchive)
	rg.POST("/archives", handler.CreateArchive)
	rg.PATCH("/archives/:id", handler.UpdateArchive)
	rg.DELETE("/archives/:id", handler.DeleteArchive)
}
