package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pickemlab/daily-pickem/external/nhl"
	"github.com/pickemlab/daily-pickem/internal/config"
	"github.com/pickemlab/daily-pickem/internal/domain/contest"
	"github.com/pickemlab/daily-pickem/internal/domain/submission"
	"github.com/pickemlab/daily-pickem/internal/infrastructure/repository/memory"
	"github.com/pickemlab/daily-pickem/internal/infrastructure/repository/postgres"
	"github.com/pickemlab/daily-pickem/internal/interfaces/httpapi"
	"github.com/pickemlab/daily-pickem/internal/platform/logging"
	"github.com/pickemlab/daily-pickem/internal/platform/resilience"
	"github.com/pickemlab/daily-pickem/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// App bundles the HTTP server with the background finalize worker and
// the resources both share.
type App struct {
	Server *http.Server
	Worker *usecase.FinalizeWorker

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	loc, err := time.LoadLocation(cfg.ContestTimezone)
	if err != nil {
		return nil, fmt.Errorf("load contest timezone %q: %w", cfg.ContestTimezone, err)
	}

	var (
		db             *sqlx.DB
		contestRepo    contest.Repository
		submissionRepo submission.Repository
	)
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		contestRepo = memory.NewContestRepository()
		submissionRepo = memory.NewSubmissionRepository()
	} else {
		dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err = otelsqlx.Open("postgres", dsn,
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		contestRepo = postgres.NewContestRepository(db)
		submissionRepo = postgres.NewSubmissionRepository(db)
	}

	scheduleClient := nhl.NewClient(nhl.ClientConfig{
		BaseURL:    cfg.NHLBaseURL,
		Timeout:    cfg.NHLTimeout,
		MaxRetries: cfg.NHLMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NHLCircuitEnabled,
			FailureThreshold: cfg.NHLCircuitFailureCount,
			OpenTimeout:      cfg.NHLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NHLCircuitHalfOpenMax,
		},
	})

	contestService := usecase.NewContestService(contestRepo, submissionRepo, scheduleClient, usecase.ContestConfig{
		Location:     loc,
		BoundaryHour: cfg.ContestBoundaryHour,
		LockBuffer:   cfg.SubmissionLockBuffer,
		ResetOffset:  cfg.ContestResetOffset,
	})
	worker := usecase.NewFinalizeWorker(contestService, logger, cfg.FinalizePollInterval, cfg.FinalizeMaxWorkers)

	handler := httpapi.NewHandler(contestService, worker, cfg.EntryFeeCents, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server: server,
		Worker: worker,
		db:     db,
	}, nil
}

// Close releases resources held by the app after the server has stopped.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
