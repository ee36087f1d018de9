package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"traillog/backend/libs/db"
	libredis "traillog/backend/libs/redis"
	"traillog/backend/services/dashboard-api/internal/config"
	httpserver "traillog/backend/services/dashboard-api/internal/http"
	"traillog/backend/services/dashboard-api/internal/http/handlers"
	"traillog/backend/services/dashboard-api/internal/http/middleware"
	redisstore "traillog/backend/services/dashboard-api/internal/redis"
	"traillog/backend/services/dashboard-api/internal/repository"
	"traillog/backend/services/dashboard-api/internal/service"
)

// App wires dashboard API dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	pool, err := db.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	var queryCache service.QueryCache
	if cfg.CacheEnabled() {
		redisClient, err = libredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			pool.Close()
			return nil, err
		}
		queryCache = redisstore.NewStore(redisClient, cfg.CacheTTL())
	} else {
		logger.Info("redis not configured, query cache disabled")
	}

	activityRepo := repository.NewActivityRepository(pool)
	diaryRepo := repository.NewDiaryRepository(pool)

	activitiesService := service.NewActivitiesService(activityRepo, queryCache, logger)
	diaryService := service.NewDiaryService(diaryRepo, logger)

	routes := httpserver.Routes{
		ActivitiesList: handlers.NewActivitiesListHandler(activitiesService),
		ActivityDetail: handlers.NewActivityDetailHandler(activitiesService),
		DiaryList:      handlers.NewDiaryListHandler(diaryService),
		DiaryCreate:    handlers.NewDiaryCreateHandler(diaryService),
		Health:         handlers.NewHealthHandler(),
	}

	var serviceAuth func(http.Handler) http.Handler
	if cfg.Auth.ServiceSecret != "" {
		routes.CacheInvalidate = handlers.NewCacheInvalidateHandler(activitiesService)
		serviceAuth = middleware.ServiceAuth(cfg.Auth.ServiceSecret)
	} else {
		logger.Info("service secret not configured, internal endpoints disabled")
	}

	router := httpserver.NewRouter(routes, serviceAuth)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		db:          pool,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
