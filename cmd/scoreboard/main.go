package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
	"github.com/mind-engage/kcse-scoreboard/internal/config"
	"github.com/mind-engage/kcse-scoreboard/internal/db"
	"github.com/mind-engage/kcse-scoreboard/internal/logging"
)

var (
	// Global flags
	logLevel      string
	catalogSource string

	cfg    config.Config
	logger = zap.NewNop()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg = config.Load()

	root := &cobra.Command{
		Use:   "scoreboard",
		Short: "KCSE scoreboard builder",
		Long: `scoreboard grades one student's KCSE marks against subject-specific
grading scales, picks the best 7 subjects (English, Kiswahili and
Mathematics always count) and prints the mean grade.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&catalogSource, "catalog", string(cfg.Catalog), "grading scale source (builtin, sql)")

	root.AddCommand(
		newSubjectsCmd(),
		newScaleCmd(),
		newGradeCmd(),
		newComputeCmd(),
		newCatalogCmd(),
	)
	return root
}

// loadCatalog resolves the configured grading scheme. A database catalog is
// read once and the handle released.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	switch config.CatalogSource(catalogSource) {
	case config.CatalogBuiltin, "":
		c, ok := catalog.Scheme(cfg.Scheme)
		if !ok {
			return nil, fmt.Errorf("no built-in grading scheme %q", cfg.Scheme)
		}
		return c, nil
	case config.CatalogSQL:
		h, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("db open failed: %w", err)
		}
		defer h.Close()
		c, err := catalog.LoadSQL(ctx, h, cfg.Scheme)
		if err != nil {
			return nil, err
		}
		logger.Debug("catalog loaded from database",
			zap.String("driver", cfg.DBDriver),
			zap.String("scheme", cfg.Scheme),
			zap.Int("subjects", c.Len()))
		return c, nil
	}
	return nil, fmt.Errorf("unknown catalog source %q (want builtin or sql)", catalogSource)
}
