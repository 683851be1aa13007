package project

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/projects", handler.ListProjects)
	rg.GET("/projects/:id", handler.GetProject)
	rg.POST("/projects", handler.CreateProject)
	rg.PATCH("/projects/:id", handler.UpdateProject)
	rg.DELETE("/projects/:id", handler.DeleteProject)
}
