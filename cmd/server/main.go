package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"augur/internal/entropy/buffer"
	entropymetrics "augur/internal/entropy/metrics"
	"augur/internal/entropy/provider"
	"augur/internal/entropy/tier"
	"augur/internal/lexicon"
	"augur/internal/oracle/handler"
	"augur/internal/oracle/service"
	"augur/internal/platform/config"
	"augur/internal/platform/httpserver"
	"augur/internal/platform/logger"
	"augur/internal/platform/metrics"
	"augur/internal/tokens"
	httptransport "augur/internal/transport/http"
	"augur/pkg/platform/sentinel"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	lex, list, err := loadWords(cfg.Lexicon, log)
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	em := entropymetrics.New(reg)
	client := &http.Client{}

	chain := provider.New(
		provider.RemoteTiers(cfg.Entropy, client, log),
		tier.NewLocal(),
		provider.WithLogger(log),
		provider.WithMetrics(em),
	)
	buf, err := buffer.New(list.Len(), provider.BulkSource(cfg.Entropy, client), chain,
		buffer.WithBatch(cfg.Entropy.BufferBatch),
		buffer.WithChunkDigits(cfg.Entropy.ChunkDigits),
		buffer.WithLogger(log),
		buffer.WithMetrics(em),
	)
	if err != nil {
		return fmt.Errorf("build entropy buffer: %w", err)
	}

	svc := service.New(chain, buf, list, lex, service.WithLogger(log))
	router := httptransport.NewRouter(httptransport.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         log,
		Metrics:        metrics.Handler(reg),
	}, handler.New(svc, log))

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting augur", "addr", cfg.Addr, "tokens", list.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// loadWords reads the lexicon and the token library in parallel. A missing
// lexicon source degrades to an empty lexicon; a missing token file to an
// empty library.
func loadWords(cfg config.LexiconConfig, log *slog.Logger) (*lexicon.Lexicon, *tokens.List, error) {
	var (
		lex  *lexicon.Lexicon
		list *tokens.List
		g    errgroup.Group
	)

	g.Go(func() error {
		var err error
		lex, err = lexicon.Load(lexicon.Paths{
			LexiconPath:   cfg.LexiconPath,
			CorpusPath:    cfg.CorpusPath,
			StopwordsPath: cfg.StopwordsPath,
		})
		if errors.Is(err, sentinel.ErrNotFound) {
			log.Warn("lexicon source missing, every word will render void", "error", err)
			lex, err = lexicon.Empty(), nil
		}
		if err != nil {
			return fmt.Errorf("load lexicon: %w", err)
		}
		log.Info("lexicon loaded", "sizes", lex.Sizes())
		return nil
	})
	g.Go(func() error {
		var err error
		list, err = tokens.Load(cfg.TokensPath)
		if errors.Is(err, sentinel.ErrNotFound) {
			log.Warn("token library missing, tokens will render void", "error", err)
			list, err = tokens.New(), nil
		}
		if err != nil {
			return fmt.Errorf("load tokens: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return lex, list, nil
}
