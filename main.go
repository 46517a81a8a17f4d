package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyapp-api/bootstrap"
	"github.com/andrewpaige1/studyapp-api/config"
	"github.com/andrewpaige1/studyapp-api/handlers"
	"github.com/andrewpaige1/studyapp-api/logger"
	"github.com/andrewpaige1/studyapp-api/middleware"
	"github.com/andrewpaige1/studyapp-api/store"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			zlog.Warn().Err(err).Msg(".env file not found, environment variables might not be loaded")
		}
	}
}

func main() {
	env, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(os.Stdout, env.Log.Level, env.Log.Format)
	zerolog.DefaultContextLogger = &log

	if err := run(env, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(env config.Environment, log zerolog.Logger) error {
	app := bootstrap.New()

	// Initialize database connection; without one the API keeps serving
	// and data endpoints report the database as not configured.
	gateway, err := config.Connect(env.Database)
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable")
		gateway = store.Unavailable(err)
	} else {
		log.Info().Str("database", gateway.Name()).Msg("connected to database")
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return gateway.Close()
	})

	DBHandler := &handlers.DBHandler{Store: gateway, Getenv: os.Getenv}
	mux := DBHandler.Routes()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   env.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(log, mux))

	srv := &http.Server{
		Addr:              env.Addr(),
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		log.Info().Msg("shutting down server")
		return srv.Shutdown(ctx)
	})

	return app.Run(context.Background(), func(ctx context.Context) error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
