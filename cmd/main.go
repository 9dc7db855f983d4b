package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/facades"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/migrations"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sbilibin2017/gw-calorie-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost            string
	AppPort            string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string

	DBDriver       string // pgx or sqlite3
	SQLitePath     string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	MigrateOnStart bool

	CacheBackend      string // memory or redis
	CacheTTL          time.Duration
	CacheSize         int
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey string
	JWTExp       time.Duration

	EdamamAppID   string
	EdamamAppKey  string
	EdamamBaseURL string
	EdamamTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string
}

// @title gw-calorie-tracker API
// @version 1.0.0
// @description Personal calorie tracking: accounts, daily food log, day notes and food lookup
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file (when present) and
// returns the application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var parseErr error
	getInt := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	cfg := &config{
		// Application config
		AppHost:            getEnv("APP_HOST", "localhost"),
		AppPort:            getEnv("APP_PORT", "8080"),
		LogLevel:           getEnv("APP_LOG_LEVEL", "info"),
		LogFormat:          getEnv("APP_LOG_FORMAT", "json"),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", "*"),

		// Database config
		DBDriver:       getEnv("DB_DRIVER", "sqlite3"),
		SQLitePath:     getEnv("SQLITE_PATH", "foodlog.db"),
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "foodlog"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Search cache config
		CacheBackend:      getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:          getSeconds("CACHE_TTL_SECOND", "300"),
		CacheSize:         getInt("CACHE_SIZE", "1000"),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:       getSeconds("JWT_EXP_SECOND", "604800"),

		// Food database config
		EdamamAppID:   getEnv("EDAMAM_APP_ID", ""),
		EdamamAppKey:  getEnv("EDAMAM_APP_KEY", ""),
		EdamamBaseURL: getEnv("EDAMAM_BASE_URL", facades.DefaultFoodDatabaseURL),
		EdamamTimeout: getSeconds("EDAMAM_TIMEOUT_SECOND", "10"),

		// Kafka config
		KafkaBrokers: getList("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "food-log-events"),
	}
	if parseErr != nil {
		return nil, parseErr
	}

	migrate, err := strconv.ParseBool(getEnv("MIGRATE_ON_START", "true"))
	if err != nil {
		return nil, fmt.Errorf("MIGRATE_ON_START: %w", err)
	}
	cfg.MigrateOnStart = migrate

	switch cfg.DBDriver {
	case "pgx", "sqlite3":
	default:
		return nil, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver)
	}
	switch cfg.CacheBackend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("CACHE_BACKEND: unsupported backend %q", cfg.CacheBackend)
	}
	if cfg.CacheSize <= 0 {
		return nil, errors.New("CACHE_SIZE: must be positive")
	}

	return cfg, nil
}

// dsn returns the data source name for the configured driver.
func (c *config) dsn() string {
	if c.DBDriver == "pgx" {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", c.SQLitePath)
}

// dayTxOptions returns the transaction options of GET /day. PostgreSQL reads
// the whole day from one snapshot; SQLite transactions are serializable
// already.
func dayTxOptions(driver string) *sql.TxOptions {
	if driver == "pgx" {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return nil
}

// run initializes the logger, database, search cache, event writer and HTTP
// server. It serves until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to the database
	logger.Log.Infow("Connecting to database", "driver", cfg.DBDriver)
	db, err := sqlx.ConnectContext(ctx, cfg.DBDriver, cfg.dsn())
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()
	if cfg.DBDriver == "pgx" {
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	}

	if cfg.MigrateOnStart {
		if err := migrations.Up(ctx, db.DB, cfg.DBDriver); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		logger.Log.Info("Database migrations applied")
	}

	// Search cache
	cache, closeCache, err := newFoodSearchCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	// Food log events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing food log events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Food database client
	foodDB := facades.NewFoodDatabaseHTTPFacade(
		&http.Client{Timeout: cfg.EdamamTimeout},
		cfg.EdamamBaseURL, cfg.EdamamAppID, cfg.EdamamAppKey,
	)
	if cfg.EdamamAppID == "" || cfg.EdamamAppKey == "" {
		logger.Log.Warn("EDAMAM_APP_ID or EDAMAM_APP_KEY not set, food search will fail")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, db, cache, foodDB, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newFoodSearchCache builds the configured cache backend and a function
// releasing it.
func newFoodSearchCache(ctx context.Context, cfg *config) (services.FoodSearchCache, func(), error) {
	if cfg.CacheBackend != "redis" {
		logger.Log.Infow("Using in-memory search cache", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
		return repositories.NewMemoryFoodSearchCache(cfg.CacheSize, cfg.CacheTTL), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis connection error: %w", err)
	}
	logger.Log.Infow("Using Redis search cache", "addr", rdb.Options().Addr, "ttl", cfg.CacheTTL)
	return repositories.NewRedisFoodSearchCache(rdb, cfg.CacheTTL), func() { _ = rdb.Close() }, nil
}

// newRouter wires repositories, services and handlers into the HTTP router.
// newKafkaWriter flushes each event almost at once instead of waiting for a
// full batch.
func newKafkaWriter(cfg *config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func newRouter(
	cfg *config,
	db *sqlx.DB,
	cache services.FoodSearchCache,
	foodDB services.FoodDatabase,
	kafkaWriter services.KafkaWriter,
) http.Handler {
	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	entryReadRepo := repositories.NewFoodEntryReadRepository(db, middlewares.GetTxFromContext)
	entryWriteRepo := repositories.NewFoodEntryWriteRepository(db)
	noteReadRepo := repositories.NewNoteReadRepository(db, middlewares.GetTxFromContext)
	noteWriteRepo := repositories.NewNoteWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	foodLogService := services.NewFoodLogService(entryReadRepo, entryWriteRepo, kafkaWriter)
	dayService := services.NewDayService(entryReadRepo, userReadRepo, noteReadRepo)
	noteService := services.NewNoteService(noteReadRepo, noteWriteRepo)
	searchService := services.NewFoodSearchService(foodDB, cache)

	userID := middlewares.UserIDFromContext

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler())
	r.Post("/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))

		r.Get("/me", handlers.NewGetProfileHandler(profileService, userID))
		r.Put("/me", handlers.NewUpdateProfileHandler(profileService, userID))

		r.With(middlewares.TxMiddleware(db, dayTxOptions(cfg.DBDriver))).
			Get("/day", handlers.NewGetDayHandler(dayService, userID))
		r.Post("/day", handlers.NewAddEntryHandler(foodLogService, userID))
		r.Put("/day/{id}", handlers.NewUpdateEntryHandler(foodLogService, userID))
		r.Delete("/day/{id}", handlers.NewDeleteEntryHandler(foodLogService, userID))

		r.Get("/foods/search", handlers.NewFoodSearchHandler(searchService))

		r.Get("/notes", handlers.NewGetNoteHandler(noteService, userID))
		r.Post("/notes", handlers.NewSaveNoteHandler(noteService, userID))
		r.Delete("/notes", handlers.NewDeleteNoteHandler(noteService, userID))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
