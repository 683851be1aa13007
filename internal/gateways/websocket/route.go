package websocket

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, hub *Hub, resolver MemberResolver) {
	rg.GET("/ws", hub.ServeWS(resolver))
}
