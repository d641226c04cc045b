package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres"
	milestonerepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/milestone"
	phraserepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/phrase"
	planrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/plan"
	sessionrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/session"
	tokenrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/token"
	topicrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/topic"
	userrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/user"
	wordrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/word"
	writingrepo "github.com/minhngo/englishpal-backend/internal/adapter/postgres/writing"
	"github.com/minhngo/englishpal-backend/internal/adapter/provider/freedict"
	"github.com/minhngo/englishpal-backend/internal/adapter/provider/gemini"
	"github.com/minhngo/englishpal-backend/internal/auth"
	"github.com/minhngo/englishpal-backend/internal/config"
	authsvc "github.com/minhngo/englishpal-backend/internal/service/auth"
	"github.com/minhngo/englishpal-backend/internal/service/ielts"
	"github.com/minhngo/englishpal-backend/internal/service/journal"
	topicsvc "github.com/minhngo/englishpal-backend/internal/service/topic"
	"github.com/minhngo/englishpal-backend/internal/service/vocabulary"
	"github.com/minhngo/englishpal-backend/internal/transport/middleware"
	"github.com/minhngo/englishpal-backend/internal/transport/rest"
)

// rateLimiterCleanupInterval controls how often idle per-client buckets
// are evicted from the rate limiter.
const rateLimiterCleanupInterval = 10 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers together,
// and serves until the context is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	topics := topicrepo.New(pool)
	words := wordrepo.New(pool)
	phrases := phraserepo.New(pool)
	writings := writingrepo.New(pool)
	plans := planrepo.New(pool)
	sessions := sessionrepo.New(pool)
	milestones := milestonerepo.New(pool)

	dict := freedict.NewProvider(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	translator := gemini.NewTranslator(cfg.Translate.APIKey, cfg.Translate.BaseURL, cfg.Translate.Model, cfg.Translate.Timeout, logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	topicService := topicsvc.NewService(logger, topics)
	vocabularyService := vocabulary.NewService(logger, words, phrases, dict, translator)
	journalService := journal.NewService(logger, writings)
	ieltsService := ielts.NewService(logger, plans, sessions, milestones, postgres.NewTxManager(pool))

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Topic:      rest.NewTopicHandler(topicService, logger),
		Vocabulary: rest.NewVocabularyHandler(vocabularyService, logger),
		Journal:    rest.NewJournalHandler(journalService, logger),
		IELTS:      rest.NewIELTSHandler(ieltsService, logger),
		Dictionary: rest.NewDictionaryHandler(vocabularyService, logger),
	})

	limiter := middleware.NewRateLimiter(rateLimiterCleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
