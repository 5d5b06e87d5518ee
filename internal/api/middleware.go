package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/groupchat-dev/groupchat/internal/repositories"
	"github.com/groupchat-dev/groupchat/middleware/jwt"
	logger "github.com/groupchat-dev/groupchat/middleware/log"
)

// Canonical error bodies. Clients receive exactly these strings; the finer
// failure cause is not exposed.
const (
	msgUnauthorized  = "Unauthorized"
	msgForbidden     = "Forbidden"
	msgInternalError = "Internal Server Error"
)

type MiddlewareManager struct {
	tokenManager *jwt.TokenManager
	memberships  *repositories.MembershipRepository
	logger       *logger.Logger
}

func NewMiddlewareManager(
	tokenManager *jwt.TokenManager,
	memberships *repositories.MembershipRepository,
	logger *logger.Logger,
) *MiddlewareManager {
	return &MiddlewareManager{
		tokenManager: tokenManager,
		memberships:  memberships,
		logger:       logger,
	}
}

// RequireAuth admits any caller with a valid token. Used by endpoints with
// no membership policy, such as group creation.
func (m *MiddlewareManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := m.tokenManager.VerifyRequest(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
			return
		}

		setUserID(c, userID)
		c.Next()
	}
}

// MemberOnly admits a caller holding a valid token who already belongs to
// the group named in the path. 401 for an invalid token, 403 for a
// non-member, 500 when the membership check itself fails.
func (m *MiddlewareManager) MemberOnly() gin.HandlerFunc {
	return m.membershipGate(true)
}

// NonMemberOnly is the mirror policy: the caller must NOT belong to the
// group yet. It guards join against double-joining.
func (m *MiddlewareManager) NonMemberOnly() gin.HandlerFunc {
	return m.membershipGate(false)
}

func (m *MiddlewareManager) membershipGate(wantMember bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := m.tokenManager.VerifyRequest(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
			return
		}

		groupID, err := GroupID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
			return
		}

		isMember, err := m.memberships.IsMember(userID, groupID)
		if err != nil {
			m.logger.Error("membership check failed",
				zap.Error(err),
				zap.Uint("user_id", userID),
				zap.Uint("group_id", groupID),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
			return
		}

		if isMember != wantMember {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgForbidden})
			return
		}

		setUserID(c, userID)
		c.Next()
	}
}

// RequestID attaches a correlation id to the request context and echoes it
// in the X-Request-ID response header.
func (m *MiddlewareManager) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = logger.NewRequestID()
		}

		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}

func (m *MiddlewareManager) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", statusCode),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}

		if userID, ok := UserID(c); ok {
			fields = append(fields, zap.Uint("user_id", userID))
		}

		log := m.logger.WithContext(c.Request.Context())
		if statusCode >= 500 {
			log.Error("server error", fields...)
		} else if statusCode >= 400 {
			log.Warn("client error", fields...)
		} else {
			log.Info("request completed", fields...)
		}
	}
}

func (m *MiddlewareManager) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (m *MiddlewareManager) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
			}
		}()

		c.Next()
	}
}
