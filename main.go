package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"travel-gateway/cache"
	"travel-gateway/config"
	"travel-gateway/handlers"
	"travel-gateway/helper"
	"travel-gateway/logger"
	"travel-gateway/metrics"
	"travel-gateway/middleware"
	"travel-gateway/pubsub"
	"travel-gateway/repositories"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)
	helper.MaxPageSize = cfg.MaxPageSize

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Error("database initialisation failed", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// Redis backs the response cache and the broker when configured
	var (
		redisClient   *redis.Client
		responseStore cache.Cache
		broker        pubsub.Broker
	)
	if cfg.RedisAddr != "" {
		redisClient, err = cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		responseStore = cache.NewRedisCache(redisClient, cfg.CacheTTL)
		broker = pubsub.NewRedisBroker(redisClient)
	} else {
		log.Info("REDIS_ADDR not set, using in-process cache and broker")
		responseStore = cache.NewMemoryCache(cfg.CacheTTL)
		broker = pubsub.NewMemoryBroker()
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	blogTagRepo := repositories.NewBlogTagRepository(db)
	tourTypeRepo := repositories.NewTourTypeRepository(db)
	tourRepo := repositories.NewTourPackageRepository(db)
	destinationRepo := repositories.NewDestinationRepository(db)
	visaRepo := repositories.NewVisaChecklistRepository(db)
	optionRepo := repositories.NewPriceOptionRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)

	// Initialize services
	deps := services.ContentDeps{
		Compressor: services.NewCompressor(collector),
		Sanitizer:  services.NewSanitizer(),
		Metrics:    collector,
	}
	notifier := services.NewNotifier(broker, collector)
	tokens := services.NewTokenService(cfg.JWT)
	authService := services.NewAuthService(userRepo, tokens, services.NewLogMailer(notifier), services.AuthOptions{
		ResetPasswordURL: cfg.ResetPasswordURL,
		ExposeResetLink:  !cfg.IsProduction(),
	})

	httpHelper := helper.NewHTTPHelper()
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, httpHelper)

	// Initialize handlers
	api := &handlers.API{
		Auth:         handlers.NewAuthHandler(authService, httpHelper),
		Blog:         handlers.NewBlogHandler(services.NewBlogService(blogRepo, blogTagRepo, deps), httpHelper),
		Tag:          handlers.NewTagHandler(services.NewBlogTagService(blogTagRepo, blogRepo), services.NewTourTypeService(tourTypeRepo), httpHelper),
		Tour:         handlers.NewTourPackageHandler(services.NewTourPackageService(tourRepo, tourTypeRepo, deps), httpHelper),
		Destination:  handlers.NewDestinationHandler(services.NewDestinationService(destinationRepo, deps), httpHelper),
		Visa:         handlers.NewVisaChecklistHandler(services.NewVisaChecklistService(visaRepo, deps), httpHelper),
		Pricing:      handlers.NewPricingHandler(services.NewPricingService(optionRepo), httpHelper),
		Request:      handlers.NewRequestHandler(services.NewRequestService(requestRepo, notifier), httpHelper),
		Subscriber:   handlers.NewSubscriberHandler(services.NewSubscriberService(subscriberRepo), httpHelper),
		Notification: handlers.NewNotificationHandler(notifier, httpHelper),

		RequireAuth:  middleware.RequireAuth(tokens, httpHelper),
		StreamAuth:   middleware.RequireStreamAuth(tokens, httpHelper),
		OptionalAuth: middleware.OptionalAuth(tokens),
		RateLimit:    limiter.Middleware(),
		Cache:        middleware.NewResponseCache(responseStore, collector),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.Metrics(collector),
		middleware.CORS(cfg.CORSAllowedOrigin),
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	api.Register(router)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Closing the broker ends open notification streams before the server waits on them
	if err := broker.Close(); err != nil {
		log.Warn("broker close failed", "error", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	limiter.Stop()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
