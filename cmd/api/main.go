package main

import (
	"log"

	"visionflow/config"
	"visionflow/internal/ai"
	"visionflow/internal/handler"
	"visionflow/internal/mailcheck"
	vfredis "visionflow/internal/redis"
	"visionflow/internal/repository"
	"visionflow/internal/server"
	"visionflow/internal/services"
	"visionflow/pkg/database"
	"visionflow/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient := vfredis.NewClient(vfredis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	mailClient := mailcheck.NewClient(cfg.MailsBaseURL, cfg.MailsAPIKey)
	aiClient := ai.NewClient(cfg.OpenAIAPIKey, cfg.ImageModel)
	logoQuota := vfredis.NewLogoQuota(redisClient)

	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	contactRepo := repository.NewContactRepository(db)
	waitlistRepo := repository.NewWaitlistRepository(db)

	authService := services.NewAuthService(userRepo, mailClient, l)
	logoService := services.NewLogoService(aiClient, l)
	chatService := services.NewChatService(aiClient, logoService, logoQuota, l, cfg.ChatModel, cfg.ProLogoQuota)
	favoritesService := services.NewFavoritesService(favoriteRepo)
	contactService := services.NewContactService(contactRepo, mailClient, l)
	waitlistService := services.NewWaitlistService(waitlistRepo)

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(&server.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Chat:      handler.NewChatHandler(chatService),
		Favorites: handler.NewFavoritesHandler(favoritesService),
		Contact:   handler.NewContactHandler(contactService, waitlistService, l),
		Proxy:     handler.NewProxyHandler(l),
		Static:    handler.NewStaticHandler(cfg.StaticDir),
	})

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
