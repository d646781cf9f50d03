package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	"github.com/dev-mohitbeniwal/backoffice/config"
	"github.com/dev-mohitbeniwal/backoffice/controller"
	"github.com/dev-mohitbeniwal/backoffice/dao"
	"github.com/dev-mohitbeniwal/backoffice/db"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/router"
	"github.com/dev-mohitbeniwal/backoffice/service"
	"github.com/dev-mohitbeniwal/backoffice/util"
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	if size := config.GetInt("pagination.defaultPageSize"); size > 0 {
		helper_util.DefaultPageSize = size
	}

	// Initialize MongoDB
	if err := db.InitMongo(); err != nil {
		logger.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}
	defer db.CloseMongo()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// The group graph is optional; descendants fall back to Mongo without it
	var graphDriver neo4j.DriverWithContext
	if config.GetBool("neo4j.enabled") {
		if err := db.InitNeo4j(); err != nil {
			logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
		}
		defer db.CloseNeo4j()
		graphDriver = db.Neo4jDriver
		if err := dao.NewGroupGraphDAO(graphDriver).EnsureUniqueConstraint(context.Background()); err != nil {
			logger.Fatal("Failed to ensure unique constraint for Group", zap.Error(err))
		}
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService()
	notificationService := util.NewNotificationService(config.GetString("notification.sender"))

	// Action history lives in Mongo; Elasticsearch receives a copy when enabled
	auditService := audit.NewService(audit.NewMongoRepository(db.MongoDB), eventBus)
	if config.GetBool("elasticsearch.enabled") {
		indexer, err := audit.NewElasticsearchIndexer(config.GetString("elasticsearch.url"), config.GetString("elasticsearch.index"))
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
		}
		eventBus.Subscribe(audit.EventActionRecorded, func(ctx context.Context, event util.Event) error {
			return indexer.IndexAction(ctx, event.Payload.(audit.ActionHistory))
		})
	}

	// Initialize services
	services, err := service.InitializeServices(
		db.MongoDB,
		graphDriver,
		auditService,
		service.AuthConfig{
			JWTSecret:       []byte(config.GetString("auth.jwtSecret")),
			SessionTTL:      config.GetDuration("auth.sessionTTL"),
			VerificationTTL: config.GetDuration("auth.verificationTTL"),
		},
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Groups created while the graph was down or disabled are copied in before serving
	if graphDriver != nil {
		if err := services.Group.SyncGraph(context.Background()); err != nil {
			logger.Fatal("Failed to backfill group graph", zap.Error(err))
		}
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services, config.GetBool("auth.cookieSecure"))

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	middleware.InitMetrics()
	engine := router.SetupRouter(
		controllers,
		services.Auth,
		services.Gate,
		config.GetInt("rateLimit.requests"),
		config.GetDuration("rateLimit.per"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Drain(shutdownCtx); err != nil {
		logger.Warn("Event handlers still running at shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
