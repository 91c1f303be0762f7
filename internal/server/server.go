package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/config"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/handler"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/middleware"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/service"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	log    *logrus.Logger
}

func NewServer(cfg *config.Config, moodService handler.MoodService, authService service.AuthService, logger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		cfg:    cfg,
		log:    logrus.New(),
	}

	s.setupRoutes(moodService, authService, logger)

	return s
}

func (s *Server) setupRoutes(moodService handler.MoodService, authService service.AuthService, logger *zap.Logger) {
	moodHandler := handler.NewMoodHandler(moodService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Authenticated routes
	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.AuthMiddleware([]byte(s.cfg.Auth.JWTSecret), logger))
	{
		authRequired.POST("/mood/analyze", moodHandler.AnalyzeMood)
		authRequired.GET("/mood/trends", moodHandler.GetTrends)
		authRequired.POST("/mood/visual", moodHandler.LogVisualEmotion)
		authRequired.POST("/emergency", moodHandler.SetEmergency)
		authRequired.POST("/checkins", moodHandler.SubmitCheckIn)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
