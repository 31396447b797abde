package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visionflow/config"
	"visionflow/internal/handler"
	"visionflow/internal/middleware"
	"visionflow/internal/transport/httpdto"
	"visionflow/pkg/database"

	"visionflow/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	db         *gorm.DB
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Chat      *handler.ChatHandler
	Favorites *handler.FavoritesHandler
	Contact   *handler.ContactHandler
	Proxy     *handler.ProxyHandler
	Static    *handler.StaticHandler
}

func New(cfg *config.Config, l *logger.Logger, db *gorm.DB) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
		db:     db,
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/healthz", func(c *gin.Context) {
		if err := database.HealthCheck(s.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("unhealthy"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	s.engine.POST("/add-waitlist", handlers.Contact.AddWaitlist)
	s.engine.POST("/register", handlers.Auth.Register)
	s.engine.POST("/login", handlers.Auth.Login)
	s.engine.POST("/chat", handlers.Chat.Chat)
	s.engine.POST("/save-favorite", handlers.Favorites.Save)
	s.engine.POST("/favorites", handlers.Favorites.List)
	s.engine.POST("/delete-favorite", handlers.Favorites.Delete)
	s.engine.POST("/clear-favorites", handlers.Favorites.Clear)
	s.engine.POST("/send-message", handlers.Contact.SendMessage)
	s.engine.GET("/proxy-image", handlers.Proxy.ProxyImage)

	s.engine.GET("/", handlers.Static.Landing)
	s.engine.GET("/landing", handlers.Static.Landing)
	s.engine.GET("/index.html", handlers.Static.Index)
	s.engine.GET("/plan", handlers.Static.Plan)
	s.engine.GET("/plan.html", handlers.Static.Plan)
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
