package main

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/groupchat-dev/groupchat/config"
	"github.com/groupchat-dev/groupchat/internal/api"
	"github.com/groupchat-dev/groupchat/internal/handlers"
	"github.com/groupchat-dev/groupchat/internal/repositories"
	"github.com/groupchat-dev/groupchat/internal/services"
	"github.com/groupchat-dev/groupchat/internal/storage"
	"github.com/groupchat-dev/groupchat/middleware/jwt"
	logger "github.com/groupchat-dev/groupchat/middleware/log"
)

func main() {
	cfg, err := config.LoadConfig("./config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer appLogger.Close()

	db, err := storage.Open(&cfg.Database)
	if err != nil {
		appLogger.Fatal("open storage", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	groupService := services.NewGroupService(groupRepo)
	membershipService := services.NewMembershipService(membershipRepo)
	messageService := services.NewMessageService(messageRepo)

	tokenManager := jwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	mw := api.NewMiddlewareManager(tokenManager, membershipRepo, appLogger)

	groupHandler := handlers.NewGroupHandler(groupService, membershipService, appLogger)
	messageHandler := handlers.NewMessageHandler(messageService, appLogger)
	tokenHandler := handlers.NewTokenHandler(userRepo, tokenManager, appLogger)

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	handlers.RegisterRoutes(r, mw, groupHandler, messageHandler, tokenHandler)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	appLogger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		appLogger.Fatal("server exited", zap.Error(err))
	}
}
