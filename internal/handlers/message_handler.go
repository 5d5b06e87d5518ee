package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/groupchat-dev/groupchat/internal/api"
	"github.com/groupchat-dev/groupchat/internal/services"
	logger "github.com/groupchat-dev/groupchat/middleware/log"
)

// MessageHandler 消息处理器
type MessageHandler struct {
	messageService *services.MessageService
	logger         *logger.Logger
}

// NewMessageHandler 创建消息处理器实例
func NewMessageHandler(messageService *services.MessageService, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// ListMessages 获取群组消息
func (h *MessageHandler) ListMessages(c *gin.Context) {
	groupID, err := api.GroupID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	messages, err := h.messageService.ListMessages(groupID)
	if err != nil {
		h.logger.Error("list messages failed",
			zap.Error(err),
			zap.Uint("group_id", groupID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// PostMessage 发送群组消息
func (h *MessageHandler) PostMessage(c *gin.Context) {
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

	// The text is stored as-is; an empty or missing body is not rejected.
	var req services.PostMessageRequest
	_ = c.ShouldBindJSON(&req)

	message, err := h.messageService.PostMessage(userID, groupID, &req)
	if err != nil {
		h.logger.Error("post message failed",
			zap.Error(err),
			zap.Uint("user_id", userID),
			zap.Uint("group_id", groupID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, message)
}
