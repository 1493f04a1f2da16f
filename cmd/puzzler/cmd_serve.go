package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "svw.info/puzzler/internal/adapters/http"
	"svw.info/puzzler/internal/config"
	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/hint"
	"svw.info/puzzler/internal/infrastructure/storage"
	"svw.info/puzzler/internal/ports"
	"svw.info/puzzler/internal/scrambler"
	"svw.info/puzzler/internal/solver"
	"svw.info/puzzler/internal/usecase"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the puzzle HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// watchedScrambler rebuilds its word pool from the watcher on every call
// so dictionary edits apply without a restart.
type watchedScrambler struct {
	watcher *dictionary.Watcher
}

func (s *watchedScrambler) Scramble(ctx context.Context, kind domain.Kind, seed int64, d domain.Difficulty) (domain.Puzzle, ports.Stats, error) {
	return scrambler.NewWalkScrambler(s.watcher.Set()).Scramble(ctx, kind, seed, d)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	logger := buildLogger()
	slog.SetDefault(logger)

	var sc ports.Scrambler
	switch {
	case cfg.Words.Path != "" && cfg.Words.Watch:
		w, err := dictionary.NewWatcher(cfg.Words.Path, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		sc = &watchedScrambler{watcher: w}
	case cfg.Words.Path != "":
		words, err := dictionary.FromFile(cfg.Words.Path)
		if err != nil {
			return err
		}
		sc = scrambler.NewWalkScrambler(words)
	default:
		sc = scrambler.NewWalkScrambler(dictionary.Default())
	}

	var store ports.Store
	switch cfg.Storage.Backend {
	case "badger":
		b, err := storage.OpenBadger(cfg.Storage.Path)
		if err != nil {
			return err
		}
		defer b.Close()
		store = b
	default:
		store = storage.NewFS(cfg.Storage.Path)
	}

	opts := solver.DefaultOptions().
		WithMaxDepth(cfg.Search.MaxDepth).
		WithMaxNodes(cfg.Search.MaxNodes)
	uc := usecase.NewService(
		map[domain.Method]ports.Solver{
			domain.DepthFirst:   solver.NewDepthFirstSolver(opts),
			domain.BreadthFirst: solver.NewBreadthFirstSolver(opts),
		},
		sc,
		hint.NewShortestStep(opts),
		store,
	)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpadapter.New(uc, logger, cfg.Search.Timeout).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			"addr", cfg.Addr,
			"storage", cfg.Storage.Backend,
			"maxNodes", cfg.Search.MaxNodes,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
