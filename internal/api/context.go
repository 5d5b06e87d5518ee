package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDKey is the typed key under which the gates store the resolved caller
// id for downstream handlers.
const userIDKey = "auth.user_id"

func setUserID(c *gin.Context, userID uint) {
	c.Set(userIDKey, userID)
}

// UserID returns the caller id resolved by an authorization gate. The second
// return is false when no gate ran on the route.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

// GroupID parses the {group_id} path segment.
func GroupID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("group_id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
