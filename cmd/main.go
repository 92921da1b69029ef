package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"videotube-server/config"
	_ "videotube-server/docs"
	"videotube-server/internal/handler"
	"videotube-server/internal/middleware"
	"videotube-server/internal/repository"
	"videotube-server/internal/security"
	"videotube-server/internal/service"
	"videotube-server/internal/util"
)

type handlers struct {
	auth   *handler.AuthenticationHandler
	users  *handler.UserHandler
	videos *handler.VideoHandler
	health *handler.HealthHandler
}

// @title Videotube-server
// @version 1.0
// @description REST API видеохостинга: пользователи, сессии и видео

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "путь к файлу конфигурации")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		util.Logger.Fatal().Err(err).Msg("ошибка загрузки конфигурации")
	}
	util.SetupLogger(cfg.Log.Level, cfg.Log.Pretty)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		util.Logger.Fatal().Err(err).Msg("не удалось подключиться к БД")
	}
	defer func() {
		if err := db.Close(); err != nil {
			util.Logger.Error().Err(err).Msg("ошибка при закрытии БД")
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		util.Logger.Fatal().Err(err).Msg("ошибка подключения к Redis")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			util.Logger.Error().Err(err).Msg("ошибка при закрытии Redis")
		}
	}()

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		util.Logger.Fatal().Err(err).Msg("ошибка создания S3 сервиса")
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.VideoCache)*time.Second)

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(db, userRepo, sessionRepo, jwtService)
	userService := service.NewUserService(db, userRepo, s3Service)
	videoService := service.NewVideoService(db, videoRepo, cacheRepo, s3Service)

	h := handlers{
		auth:   handler.NewAuthenticationHandler(authService, &cfg.Cookie, &cfg.JWT),
		users:  handler.NewUserHandler(userService, cfg.Server.MaxUploadBytes),
		videos: handler.NewVideoHandler(videoService, cfg.Server.MaxUploadBytes),
		health: handler.NewHealthHandler(db, redisClient),
	}

	srv, router := config.SetupServer(cfg.Server.Addr)

	router.Use(chimid.RequestID)
	router.Use(chimid.RealIP)
	router.Use(middleware.RequestLogger(util.Logger))
	router.Use(chimid.Recoverer)
	router.Use(middleware.PrometheusMiddleware)
	router.Use(middleware.NewSecure(middleware.SecureOptions(cfg.Server.Development)))

	authGate := security.JWTMiddleware(jwtService, userRepo, db)
	authLimit := httprate.LimitByIP(cfg.RateLimit.AuthRequestsPerMinute, time.Minute)
	setupRoutes(router, cfg.Server.BasePath, h, authGate, authLimit)

	runServer(ctx, srv)
}

// setupRoutes : API и healthz под basePath, служебные маршруты в корне
func setupRoutes(router chi.Router, basePath string, h handlers, authGate, authLimit func(http.Handler) http.Handler) {
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route(basePath, func(r chi.Router) {
		r.Get("/healthz", h.health.Health)
		setupUserRoutes(r, h, authGate, authLimit)
		setupVideoRoutes(r, h, authGate)
	})
}

func setupUserRoutes(r chi.Router, h handlers, authGate, authLimit func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimit)
			r.Post("/register", h.users.Register)
			r.Post("/login", h.auth.Login)
			r.Post("/refresh-access-token", h.auth.RefreshToken)
		})
		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Post("/logout", h.auth.Logout)
			r.Get("/current-user", h.users.CurrentUser)
		})
	})
}

func setupVideoRoutes(r chi.Router, h handlers, authGate func(http.Handler) http.Handler) {
	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.videos.ListVideos)
		r.Get("/{videoId}", h.videos.GetVideoByID)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Post("/", h.videos.PublishVideo)
			r.Patch("/{videoId}", h.videos.UpdateVideo)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		util.Logger.Info().Str("addr", server.Addr).Msg("сервер запущен")
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			util.Logger.Fatal().Err(err).Msg("ошибка работы сервера")
		}
	case sig := <-signalChannel:
		util.Logger.Info().Str("signal", sig.String()).Msg("получен сигнал остановки работы сервера")
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		util.Logger.Error().Err(err).Msg("ошибка при остановке сервера")
	} else {
		util.Logger.Info().Msg("сервер успешно остановлен")
	}
}
