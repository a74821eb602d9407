package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"store-admin/internal/config"
	custommiddleware "store-admin/internal/middleware"
	"store-admin/internal/repository"
	"store-admin/internal/service"
	"store-admin/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env != "production"))

	// Rate limiting backed by Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.Server.RateLimit,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit",
	}, logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	billboardRepo := repository.NewBillboardRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	colorRepo := repository.NewColorRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, refreshTokenRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	storeService := service.NewStoreService(storeRepo)
	billboardService := service.NewBillboardService(billboardRepo)
	categoryService := service.NewCategoryService(categoryRepo, billboardRepo)
	sizeService := service.NewSizeService(sizeRepo)
	colorService := service.NewColorService(colorRepo)
	productService := service.NewProductService(productRepo)

	// Initialize handlers
	userHandler := transport.NewUserHandler(userService, logger)
	storeHandler := transport.NewStoreHandler(storeService, logger)
	billboardHandler := transport.NewBillboardHandler(billboardService, logger)
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)
	sizeHandler := transport.NewSizeHandler(sizeService, logger)
	colorHandler := transport.NewColorHandler(colorService, logger)
	productHandler := transport.NewProductHandler(productService, logger)

	// Auth runs first on every write; the ownership check resolves the
	// store before any payload is decoded.
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	ownerMiddleware := custommiddleware.RequireStoreOwner(storeRepo, logger)

	// Register routes
	userHandler.RegisterRoutes(router, authMiddleware)
	storeHandler.RegisterRoutes(router, authMiddleware)
	billboardHandler.RegisterRoutes(router, authMiddleware, ownerMiddleware)
	categoryHandler.RegisterRoutes(router, authMiddleware, ownerMiddleware)
	sizeHandler.RegisterRoutes(router, authMiddleware, ownerMiddleware)
	colorHandler.RegisterRoutes(router, authMiddleware, ownerMiddleware)
	productHandler.RegisterRoutes(router, authMiddleware, ownerMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
