package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodtruck-api/internal/config"
	"foodtruck-api/internal/handler"
	"foodtruck-api/internal/loader"
	"foodtruck-api/internal/repository"
	"foodtruck-api/internal/service"
	"foodtruck-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Food Truck API
// @version         1
// @description     In-memory catalog of mobile food facility permits, queryable by locationId and block.
// @BasePath        /v1
func main() {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openSource(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("data_source", config.DataSource).Msg("cannot open data source")
	}

	// Initialize layers
	st := store.New()
	err = loader.Populate(ctx, source, st)
	closeSource()
	if err != nil {
		log.Fatal().Err(err).Str("data_source", config.DataSource).Msg("cannot load food trucks")
	}
	log.Info().Int("records", st.Len()).Str("data_source", config.DataSource).Msg("food truck catalog loaded")

	foodTruckService := service.NewFoodTruckService(st, log.Logger)
	router := handler.NewRouter(handler.RouterConfig{
		APIVersion:     config.APIVersion,
		SwaggerEnabled: config.SwaggerEnabled,
	}, foodTruckService, log.Logger)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Str("api_version", config.APIVersion).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openSource returns the snapshot source selected by DATA_SOURCE and a func releasing it.
func openSource(ctx context.Context, cfg config.Config) (loader.Source, func(), error) {
	if cfg.DataSource != config.DataSourcePostgres {
		return loader.NewFileSource(cfg.DataFile), func() {}, nil
	}

	// Database connection
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRepository(conn), conn.Close, nil
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if err != nil {
		log.Warn().Str("log_level", level).Msg("unknown log level, using info")
	}
}
