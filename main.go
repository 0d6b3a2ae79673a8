package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"assessment-service/config"
	"assessment-service/internal/cache"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"
	"assessment-service/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg := config.Load()
	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	if cfg.Mongo.URI == "" {
		logger.Log.Fatal("MONGO_URI is required")
	}
	mongoClient, err := db.InitMongo(cfg.Mongo.URI)
	if err != nil {
		logger.Log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	database := mongoClient.Database(cfg.Mongo.Database)

	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, running without question cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Log.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
	} else {
		logger.Log.Info("RabbitMQ not configured, events will not be published")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Content source
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo, redisClient)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Learner state
	sessionRepo := repository.NewSessionRepository(database)
	statsRepo := repository.NewStatsRepository(database)
	performanceRepo := repository.NewPerformanceRepository(database)
	repetitionRepo := repository.NewRepetitionRepository(database)
	historyRepo := repository.NewHistoryRepository(database)

	sessionService := service.NewSessionService(
		sessionRepo,
		statsRepo,
		performanceRepo,
		repetitionRepo,
		historyRepo,
		questionService,
		publisher,
	)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	reviewService := service.NewReviewService(repetitionRepo, performanceRepo, questionRepo, publisher)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	question := r.Group("/assessment/questions")
	{
		question.GET("/", questionHandler.ListQuestions)
		question.GET("/:id", questionHandler.GetQuestion)
		question.POST("/", questionHandler.CreateQuestion)
	}

	session := r.Group("/assessment/sessions")
	{
		session.POST("/", sessionHandler.CreateSession)
		session.GET("/history", sessionHandler.GetHistory)
		session.GET("/:id", sessionHandler.GetSession)
		session.POST("/:id/start", sessionHandler.StartSession)
		session.POST("/:id/answers", sessionHandler.SubmitAnswer)
		session.POST("/:id/abandon", sessionHandler.AbandonSession)
	}

	review := r.Group("/assessment/review")
	{
		review.GET("/due", reviewHandler.DueQuestions)
		review.POST("/:questionId/grade", reviewHandler.GradeReview)
		review.GET("/weak-areas", reviewHandler.WeakAreas)
		review.GET("/performance", reviewHandler.TopicPerformance)
		review.DELETE("/performance/:topic", reviewHandler.ResetTopic)
	}

	logger.Log.Info("assessment service listening", zap.String("port", cfg.Server.HTTPPort))
	if err := r.Run(":" + cfg.Server.HTTPPort); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
