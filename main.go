package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/smartrisk-ai/backend/internal/config"
	"github.com/smartrisk-ai/backend/internal/models"
	"github.com/smartrisk-ai/backend/internal/risk"
	"github.com/smartrisk-ai/backend/internal/router"
)

func main() {
	cfg, err := config.Load(os.Getenv("SMARTRISK_CONFIG"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.Server.Mode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Connect to the database. Postgres is used when a host is
	// configured, the bundled sqlite otherwise.
	if cfg.Database.Host != "" {
		err = models.ConnectPostgres(cfg.Database.Host, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	} else {
		err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
		if err == nil {
			err = models.Connect(cfg.Database.Path)
		}
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The AI scorer is only used when a model is configured. Scoring
	// falls back to the local formula when the model is unreachable.
	var scorer risk.Scorer = risk.FormulaScorer{}
	if cfg.AI.Model != "" {
		aiScorer, err := risk.NewAIScorer(context.Background(), cfg.AI.Model)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		scorer = aiScorer

		log.Info().Str("model", cfg.AI.Model).Msg("AI scoring enabled")
	}

	opts := router.Options{
		JWTSecret:     cfg.JWT.Secret,
		TokenLifetime: time.Duration(cfg.JWT.ExpireHours) * time.Hour,
		APIURL:        os.Getenv("SMARTRISK_API_URL"),
		EnablePprof:   cfg.Server.EnablePprof,
		Scorer:        scorer,
	}

	if cfg.Server.CORSAllowOrigins != "" {
		opts.CORSAllowOrigins = strings.Fields(cfg.Server.CORSAllowOrigins)
	}

	r, err := router.Config(opts)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(opts, r.Group("/"))

	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
