package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/groupchat-dev/groupchat/internal/api"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(
	r *gin.Engine,
	mw *api.MiddlewareManager,
	groupHandler *GroupHandler,
	messageHandler *MessageHandler,
	tokenHandler *TokenHandler,
) {
	r.Use(mw.RequestID(), mw.Logger(), mw.Recovery(), mw.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Development helper: mints a token for an existing user.
	r.GET("/protected/:user_id", tokenHandler.IssueToken)

	r.GET("/groups", groupHandler.ListGroups)
	r.POST("/groups/create", mw.RequireAuth(), groupHandler.CreateGroup)

	group := r.Group("/groups/:group_id")
	{
		group.GET("/messages", mw.MemberOnly(), messageHandler.ListMessages)
		group.POST("/messages", mw.MemberOnly(), messageHandler.PostMessage)
		group.POST("/join", mw.NonMemberOnly(), groupHandler.JoinGroup)
		group.DELETE("/leave", mw.MemberOnly(), groupHandler.LeaveGroup)
	}
}
