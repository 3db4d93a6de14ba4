package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
	"github.com/mind-engage/kcse-scoreboard/internal/db"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage grading scales kept in a database (DB_DRIVER, DB_DSN)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Write the built-in scheme's scales to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, ok := catalog.Scheme(cfg.Scheme)
			if !ok {
				return fmt.Errorf("no built-in grading scheme %q", cfg.Scheme)
			}
			h, err := db.Open(cmd.Context(), db.Driver(cfg.DBDriver), cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("db open failed: %w", err)
			}
			defer h.Close()
			if err := catalog.SeedSQL(cmd.Context(), h, cfg.Scheme, src); err != nil {
				return err
			}
			logger.Info("catalog seeded", zap.String("scheme", cfg.Scheme), zap.Int("subjects", src.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d subjects for %s\n", src.Len(), cfg.Scheme)
			return nil
		},
	}, &cobra.Command{
		Use:   "check",
		Short: "Load the database scales and verify every band table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := db.Open(cmd.Context(), db.Driver(cfg.DBDriver), cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("db open failed: %w", err)
			}
			defer h.Close()
			c, err := catalog.LoadSQL(cmd.Context(), h, cfg.Scheme)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d subjects ok\n", cfg.Scheme, c.Len())
			return nil
		},
	})
	return cmd
}
