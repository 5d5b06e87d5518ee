package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/groupchat-dev/groupchat/internal/repositories"
	"github.com/groupchat-dev/groupchat/middleware/jwt"
	logger "github.com/groupchat-dev/groupchat/middleware/log"
)

// TokenHandler mints tokens for provisioned users. Users are created out of
// band; this endpoint exists so clients and tests can obtain a credential
// without a login flow.
type TokenHandler struct {
	userRepo     *repositories.UserRepository
	tokenManager *jwt.TokenManager
	logger       *logger.Logger
}

// NewTokenHandler 创建令牌处理器实例
func NewTokenHandler(
	userRepo *repositories.UserRepository,
	tokenManager *jwt.TokenManager,
	logger *logger.Logger,
) *TokenHandler {
	return &TokenHandler{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// IssueToken 为已有用户签发令牌
func (h *TokenHandler) IssueToken(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.userRepo.GetByID(uint(userID))
	if err != nil {
		h.logger.Error("load user failed", zap.Error(err), zap.Uint64("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	token, err := h.tokenManager.Generate(user.ID, user.UserName)
	if err != nil {
		h.logger.Error("sign token failed", zap.Error(err), zap.Uint("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.String(http.StatusOK, token)
}
