package member

import "github.com/gin-gonic/gin"

// RegisterAuthRoutes mounts the endpoints reachable without a session.
func RegisterAuthRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/auth/signup", handler.SignUp)
	rg.POST("/auth/signin", handler.SignIn)
}

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/auth/signout", handler.SignOut)
	rg.GET("/auth/me", handler.Me)
	rg.GET("/members", handler.ListMembers)
	rg.POST("/members/:id/approve", handler.ApproveMember)
	rg.PATCH("/members/me", handler.UpdateProfile)
	rg.PATCH("/members/me/status", handler.SetStatus)
}
