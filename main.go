package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"learning-service/internal/config"
	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/recommend"
	"learning-service/internal/scoring"
	"learning-service/internal/service"
	"learning-service/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.ServiceConfig

	// Stores: MongoDB when configured, in-memory fallback otherwise
	var (
		learnerStore    store.LearnerStore
		contentStore    store.ContentStore
		engagementStore store.EngagementStore
	)
	if cfg.MongoDB.URI != "" {
		if err := db.InitMongo(cfg.MongoDB); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer db.CloseDB()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
		if err := db.CreateIndexes(ctx); err != nil {
			log.Printf("Failed to create indexes: %v", err)
		}
		cancel()

		learnerStore = store.NewMongoLearnerStore(db.Database)
		contentStore = store.NewMongoContentStore(db.Database)
		engagementStore = store.NewMongoEngagementStore(db.Database)
	} else {
		log.Println("MONGO_URI not set, using in-memory store")
		learnerStore = store.NewMemoryLearnerStore()
		contentStore = store.NewMemoryContentStore()
		engagementStore = store.NewMemoryEngagementStore()
	}

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Engines
	engine := scoring.NewEngine(nil)
	comprehensive := scoring.NewComprehensive(nil)
	recommendConfig := recommend.DefaultRecommendConfig()
	if cfg.Scoring.PathCandidateTop > 0 {
		recommendConfig.PathCandidates = cfg.Scoring.PathCandidateTop
	}
	matcher := recommend.NewMatcher(recommendConfig)
	ranker := recommend.NewRanker(matcher, contentStore)

	// Services
	learnerService := service.NewLearnerService(learnerStore)
	contentService := service.NewContentService(contentStore)
	scoringService := service.NewScoringService(engine, comprehensive, learnerStore, engagementStore)
	recommendationService := service.NewRecommendationService(scoringService, ranker)

	// Handlers
	learnerHandler := handlers.NewLearnerHandler(learnerService)
	contentHandler := handlers.NewContentHandler(contentService)
	scoringHandler := handlers.NewScoringHandler(scoringService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, cfg.Scoring.DefaultTopN)

	setupRoutes(r, learnerHandler, contentHandler, scoringHandler, recommendationHandler, publisher)

	r.Run(cfg.Server.Host + ":" + cfg.Server.Port)
}

func setupRoutes(
	r *gin.Engine,
	learnerHandler *handlers.LearnerHandler,
	contentHandler *handlers.ContentHandler,
	scoringHandler *handlers.ScoringHandler,
	recommendationHandler *handlers.RecommendationHandler,
	publisher *event.EventPublisher,
) {
	// Public routes - learner profiles and the scoring pipeline
	publicLearner := r.Group("/public/learning/learner")
	{
		publicLearner.GET("/", learnerHandler.ListLearners)
		publicLearner.GET("/:id", learnerHandler.GetLearner)

		publicLearner.GET("/:id/score-summary", func(c *gin.Context) {
			scoringHandler.GetScoreSummary(c)
			if publisher != nil {
				publisher.Publish(event.ScoreSummaryGenerated, gin.H{
					"learner_id": c.Param("id"),
				})
			}
		})

		publicLearner.GET("/:id/comprehensive-score", func(c *gin.Context) {
			scoringHandler.GetComprehensiveScore(c)
			if publisher != nil {
				publisher.Publish(event.ComprehensiveScored, gin.H{
					"learner_id": c.Param("id"),
				})
			}
		})

		publicLearner.GET("/:id/recommendations", func(c *gin.Context) {
			recommendationHandler.GetRecommendations(c)
			if publisher != nil {
				publisher.Publish(event.RecommendationsServed, gin.H{
					"learner_id": c.Param("id"),
					"top_n":      c.Query("top_n"),
				})
			}
		})

		publicLearner.GET("/:id/learning-path", func(c *gin.Context) {
			recommendationHandler.GetLearningPath(c)
			if publisher != nil {
				publisher.Publish(event.LearningPathGenerated, gin.H{
					"learner_id": c.Param("id"),
				})
			}
		})
	}

	// Public routes - content catalog
	publicContent := r.Group("/public/learning/content")
	{
		publicContent.GET("/", contentHandler.ListContents)
		publicContent.GET("/:id", contentHandler.GetContent)
	}

	// Protected routes - learner management and activity logging
	protectedLearner := r.Group("/protected/learning/learner")
	protectedLearner.Use(requireUserID())
	{
		protectedLearner.POST("/", func(c *gin.Context) {
			learnerHandler.CreateLearner(c)
			if publisher != nil {
				publisher.Publish(event.LearnerCreated, gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protectedLearner.PUT("/:id", learnerHandler.UpdateLearner)
		protectedLearner.DELETE("/:id", learnerHandler.DeleteLearner)

		protectedLearner.POST("/:id/activity", func(c *gin.Context) {
			learnerHandler.LogActivity(c)
			if publisher != nil {
				publisher.Publish(event.LearnerActivityLogged, gin.H{
					"learner_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})

		protectedLearner.POST("/:id/test-result", func(c *gin.Context) {
			scoringHandler.RecordTestResult(c)
			if publisher != nil {
				publisher.Publish(event.TestResultRecorded, gin.H{
					"learner_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})
	}

	// Protected routes - catalog management
	protectedContent := r.Group("/protected/learning/content")
	protectedContent.Use(requireUserID())
	{
		protectedContent.POST("/", func(c *gin.Context) {
			contentHandler.CreateContent(c)
			if publisher != nil {
				publisher.Publish(event.ContentCatalogModified, gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protectedContent.PUT("/:id", contentHandler.UpdateContent)
		protectedContent.DELETE("/:id", contentHandler.DeleteContent)
	}
}

// requireUserID gates protected routes on the X-User-ID header set by
// the gateway.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
