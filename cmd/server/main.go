package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/master-racoon/hackathon-last-mile/internal/adapters/cache"
	"github.com/master-racoon/hackathon-last-mile/internal/adapters/oracle"
	"github.com/master-racoon/hackathon-last-mile/internal/adapters/repositories"
	"github.com/master-racoon/hackathon-last-mile/internal/api"
	"github.com/master-racoon/hackathon-last-mile/internal/config"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/db"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/logging"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/obs"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
	"github.com/master-racoon/hackathon-last-mile/internal/services"
)

// main is the application composition root. It wires concrete adapters
// (Postgres, Redis, the duration model) behind ports and starts the HTTP
// server. A missing model artifact is fatal: the service refuses to start
// rather than silently serve without predictions.
func main() {
	log := logging.New("server")

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.SetGlobalLevel(cfg.Logging.Level)

	database, err := db.Open(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close()

	model, err := oracle.Load(cfg.Model.ArtifactPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load duration model")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := obs.NewPredictionMetrics(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("register metrics")
	}

	orderRepo := repositories.NewPostgresOrderRepository(database)
	vehicleRepo := repositories.NewPostgresVehicleTypeRepository(database)
	trackRepo := repositories.NewPostgresTrackRepository(database)
	predictionRepo := repositories.NewPostgresPredictionRepository(database)

	var trackFinder ports.TrackFinder = trackRepo
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		trackFinder = cache.NewRedisTrackCache(trackRepo, rdb, cfg.Redis.TrackTTL, logging.New("track-cache"))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("track cache enabled")
	}

	engine, err := services.NewPredictionEngine(
		orderRepo, vehicleRepo, trackFinder, predictionRepo,
		model, metrics, logging.New("prediction-engine"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("build prediction engine")
	}

	router := api.NewRouter(api.Deps{
		Orders:      orderRepo,
		Vehicles:    vehicleRepo,
		Tracks:      trackRepo,
		Predictions: predictionRepo,
		Engine:      engine,
		Registry:    registry,
		Log:         logging.New("http"),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	log.Info().Str("addr", addr).Str("model_version", model.Version()).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
