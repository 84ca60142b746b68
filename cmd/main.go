package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Lawrencium-103/Linky-V2/internal/facades"
	"github.com/Lawrencium-103/Linky-V2/internal/handlers"
	"github.com/Lawrencium-103/Linky-V2/internal/jwt"
	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/middlewares"
	"github.com/Lawrencium-103/Linky-V2/internal/repositories"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
	"github.com/Lawrencium-103/Linky-V2/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// sampleAccessCodes seed the in-memory store when the database is offline.
var sampleAccessCodes = []string{"LINKY2026A", "BETA123456", "DEMO789XYZ"}

// @title Linky API
// @version 1.0.0
// @description Service generating LinkedIn posts through a multi-pass LLM workflow
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		openRouterKey, newsAPIKey, gnewsAPIKey,
		jwtSecret, jwtExpSecond,
		freeUsageLimit, requireAccessCode,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddr, kafkaTopic,
		openRouterKey, newsAPIKey, gnewsAPIKey,
		jwtSecret, jwtExpSecond,
		freeUsageLimit, requireAccessCode,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, provider, JWT, and access
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	openRouterKey, newsAPIKey, gnewsAPIKey string,
	jwtSecretKey string, jwtExpSecond int,
	freeUsageLimit int, requireAccessCode bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "linky")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("ENRICHMENT_CACHE_TTL_SECOND", "900")); err != nil {
		return
	}

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "linky-events")

	// Provider config
	openRouterKey = getEnv("OPENROUTER_API_KEY", "")
	newsAPIKey = getEnv("NEWS_API_KEY", "")
	gnewsAPIKey = getEnv("GNEWS_API_KEY", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Access config
	if freeUsageLimit, err = strconv.Atoi(getEnv("FREE_USAGE_LIMIT", "3")); err != nil {
		return
	}
	requireAccessCode = getEnv("REQUIRE_ACCESS_CODE", "true") == "true"

	return
}

// run initializes the logger, storage, cache, Kafka, provider facades, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown. When PostgreSQL is unreachable the service falls back to bypass
// mode with an in-memory store and reusable access codes.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	openRouterKey, newsAPIKey, gnewsAPIKey string,
	jwtSecretKey string, jwtExpSecond int,
	freeUsageLimit int, requireAccessCode bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Service collaborators, bound to either PostgreSQL or memory below
	var (
		bypassMode bool
		codeReader services.AccessCodeReader
		codeWriter services.AccessCodeWriter
		userReader services.UserReader
		userWriter services.UserWriter
		metricsR   services.MetricsReader
		metricsW   services.MetricsWriter
		postWriter interface {
			services.PostWriter
			services.PostFlagger
		}
		postReader interface {
			services.PostCounter
			services.PostLister
		}
	)

	// Connect to PostgreSQL, falling back to bypass mode on failure
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	db, err := sqlx.ConnectContext(pingCtx, "pgx", dsn)
	cancelPing()
	if err != nil {
		logger.Log.Warnw("PostgreSQL unreachable, entering bypass mode with in-memory store", "error", err)
		bypassMode = true

		store := repositories.NewMemoryStore(sampleAccessCodes)
		codes := store.AccessCodes()
		users := store.Users()
		metrics := store.Metrics()
		posts := store.Posts()
		codeReader, codeWriter = codes, codes
		userReader, userWriter = users, users
		metricsR, metricsW = metrics, metrics
		postWriter, postReader = posts, posts
	} else {
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)

		if err := migrations.Apply(ctx, db); err != nil {
			logger.Log.Errorw("failed to apply migrations", "error", err)
			return err
		}

		codeReader = repositories.NewAccessCodeReadRepository(db)
		codeWriter = repositories.NewAccessCodeWriteRepository(db)
		userReader = repositories.NewUserReadRepository(db)
		userWriter = repositories.NewUserWriteRepository(db)
		metricsR = repositories.NewMetricsReadRepository(db)
		metricsW = repositories.NewMetricsWriteRepository(db)
		postWriter = repositories.NewPostWriteRepository(db)
		postReader = repositories.NewPostReadRepository(db)
	}

	if !requireAccessCode {
		bypassMode = true
	}

	// Connect to Redis, enrichment cache is optional
	var cache services.EnrichmentCacheRepo
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unreachable, enrichment caching disabled", "error", err)
		rdb.Close()
	} else {
		defer rdb.Close()
		cache = repositories.NewEnrichmentCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	}

	// Connect to Kafka, event publishing is optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("Kafka address not configured, event publishing disabled")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize provider facades
	llm := facades.NewOpenRouterFacade(openRouterKey)
	news := facades.NewNewsFacade(newsAPIKey, gnewsAPIKey)
	geo := facades.NewGeoFacade()

	// Initialize services
	accessService := services.NewAccessService(codeReader, codeWriter, userWriter, jwtSvc, geo)
	generationService := services.NewGenerationService(
		llm, news, cache, userReader, postWriter, postReader, metricsW, kafkaWriter, freeUsageLimit)
	metricsService := services.NewMetricsService(metricsR, metricsW, postWriter, postReader, kafkaWriter)

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(bypassMode)
	accessHandler := handlers.NewAccessHandler(accessService, bypassMode)
	generateHandler := handlers.NewGenerateHandler(generationService, jwtSvc)
	likeHandler := handlers.NewEngagementHandler(metricsService, jwtSvc, "like")
	shareHandler := handlers.NewEngagementHandler(metricsService, jwtSvc, "share")
	metricsHandler := handlers.NewGetMetricsHandler(metricsService, jwtSvc)
	postsHandler := handlers.NewListPostsHandler(metricsService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", indexHandler)
	r.Post("/api/v1/access", accessHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Post("/api/v1/generate", generateHandler)
		r.Get("/api/v1/posts", postsHandler)
		r.Post("/api/v1/posts/{postID}/like", likeHandler)
		r.Post("/api/v1/posts/{postID}/share", shareHandler)
		r.Get("/api/v1/metrics", metricsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
