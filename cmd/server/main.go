package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"codexam/internal/cache"
	"codexam/internal/config"
	"codexam/internal/repository"
	"codexam/internal/service"
	"codexam/internal/transport/rest"
	"codexam/internal/transport/ws"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("started")
	ctx := context.Background()

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()
	logrus.WithField("model", aiConfig.Model).Info("AI config loaded")
	if aiConfig.APIKey == "" {
		logrus.Warn("AI_API_KEY not set, completions will fall back to local scoring")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logrus.WithError(err).Fatal("failed to ping MongoDB")
	}
	logrus.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logrus.WithError(err).Fatal("failed to ping Redis")
	}
	logrus.Info("connected to Redis")

	// Monitor hub
	wsHub := ws.NewHub()

	// Repositories and caches
	bankRepo := repository.NewBankRepo(db)
	promptRepo := repository.NewPromptRepo(db)
	results := cache.NewResultCache(rdb)

	// Services
	completions := service.NewCompletionClient(aiConfig)
	prompts := service.NewPromptResolver(promptRepo)

	authSvc := service.NewAuthService(cfg)
	questionSvc := service.NewQuestionService(completions, prompts)
	evaluationSvc := service.NewEvaluationService(completions, prompts, results)
	analysisSvc := service.NewAnalysisService(completions, prompts, results)
	examSvc := service.NewExamService(completions, prompts, service.NewDefaultRandomizer(), results)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	evaluationSvc.SetBroadcaster(wsHub)
	analysisSvc.SetBroadcaster(wsHub)
	examSvc.SetBroadcaster(wsHub)
	examSvc.SetQuestionBank(bankRepo)

	container := &rest.Container{
		AuthService:       authSvc,
		QuestionService:   questionSvc,
		EvaluationService: evaluationSvc,
		AnalysisService:   analysisSvc,
		ExamService:       examSvc,
		BankRepo:          bankRepo,
		PromptRepo:        promptRepo,
		Results:           results,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logrus.WithField("port", cfg.HTTPPort).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exited")
}
