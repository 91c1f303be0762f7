package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/classifier"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/config"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/crisis"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/mood"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/notifier"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/repository"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/server"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/service"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/trends"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(db, logger)
	settingsRepo := repository.NewSettingsRepository(db, logger)
	authRepo := repository.NewAuthRepository(db, logrus.New())

	// Classifier clients: one instance for emotion, one for risk. Both may
	// point at the same model service; that is a config choice, not structure.
	classifyTimeout := time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second
	if classifyTimeout <= 0 {
		classifyTimeout = 10 * time.Second
	}
	emotionClassifier := classifier.NewClient(cfg.Classifier.EmotionURL, classifyTimeout)
	riskClassifier := classifier.NewClient(cfg.Classifier.RiskURL, classifyTimeout)

	// Crisis decision engine, phrase set loaded from config
	engine := crisis.NewEngine(cfg.Crisis.Phrases, cfg.Crisis.NegativeLabels, cfg.Crisis.RiskThreshold)

	// Trend aggregator
	aggregator := trends.NewAggregator(cfg.Trends.MoodSwingStdDev)

	// Telegram notifier for emergency escalation (optional)
	tgNotifier, err := notifier.NewTelegramNotifier(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram notifier, continuing without it", zap.Error(err))
		tgNotifier = nil
	}
	var escalation mood.Notifier
	if tgNotifier != nil {
		escalation = tgNotifier
	}

	// Mood service wires the whole analysis pipeline together
	moodService := mood.NewService(emotionClassifier, riskClassifier, engine, aggregator,
		entryRepo, settingsRepo, escalation, logger, classifyTimeout)

	// Auth service
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(authRepo, []byte(cfg.Auth.JWTSecret), tokenTTL, logger)

	// Initialize and run the server
	srv := server.NewServer(cfg, moodService, authService, logger)
	srv.Run(cfg.Server.Port)
}
