package post

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/posts", handler.ListPosts)
	rg.GET("/posts/:id", handler.GetPost)
	rg.POST("/posts", handler.CreatePost)
	rg.PATCH("/posts/:id", handler.UpdatePost)
	rg.DELETE("/posts/:id", handler.DeletePost)
}
