package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/groupchat-dev/groupchat/internal/api"
	"github.com/groupchat-dev/groupchat/internal/services"
	logger "github.com/groupchat-dev/groupchat/middleware/log"
)

// GroupHandler 群组处理器
type GroupHandler struct {
	groupService      *services.GroupService
	membershipService *services.MembershipService
	logger            *logger.Logger
}

// NewGroupHandler 创建群组处理器实例
func NewGroupHandler(
	groupService *services.GroupService,
	membershipService *services.MembershipService,
	logger *logger.Logger,
) *GroupHandler {
	return &GroupHandler{
		groupService:      groupService,
		membershipService: membershipService,
		logger:            logger,
	}
}

// ListGroups 获取所有群组
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		h.logger.Error("list groups failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CreateGroup 创建群组
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := api.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// The name is taken as-is; there is no validation on it.
	var req services.CreateGroupRequest
	_ = c.ShouldBindJSON(&req)

	group, err := h.groupService.CreateGroup(userID, &req)
	if err != nil {
		h.logger.Error("create group failed",
			zap.Error(err),
			zap.Uint("user_id", userID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// JoinGroup 加入群组
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID, ok := api.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	groupID, err := api.GroupID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	if err := h.membershipService.Join(userID, groupID); err != nil {
		h.logger.Error("join group failed",
			zap.Error(err),
			zap.Uint("user_id", userID),
			zap.Uint("group_id", groupID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.Status(http.StatusCreated)
}

// LeaveGroup 退出群组
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, ok := api.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	groupID, err := api.GroupID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	if err := h.membershipService.Leave(userID, groupID); err != nil {
		h.logger.Error("leave group failed",
			zap.Error(err),
			zap.Uint("user_id", userID),
			zap.Uint("group_id", groupID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.Status(http.StatusNoContent)
}
