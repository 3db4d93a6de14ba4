package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/kcse-scoreboard/internal/grading"
	"github.com/mind-engage/kcse-scoreboard/internal/report"
	"github.com/mind-engage/kcse-scoreboard/internal/session"
)

func newComputeCmd() *cobra.Command {
	var (
		sheetPath string
		format    string
		outPath   string
	)
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute and print a student's scoreboard from a mark sheet",
		Long: `Reads a YAML or JSON mark sheet, validates it, picks the best 7
subjects and prints the scoreboard.

Example sheet:
  student:
    name: Amina Wanjiru
    index_number: "20412001001"
  subjects: 8
  marks:
    - {code: "101", mark: "80"}
    - {code: "102", mark: "78"}
    ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, sheetPath, format, outPath)
		},
	}
	cmd.Flags().StringVarP(&sheetPath, "file", "f", "-", "mark sheet path, - for stdin")
	cmd.Flags().StringVar(&format, "format", cfg.ReportFormat, "report format (text, html, json)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func runCompute(cmd *cobra.Command, sheetPath, format, outPath string) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if sheetPath != "-" {
		fh, err := os.Open(sheetPath)
		if err != nil {
			return err
		}
		defer fh.Close()
		in = fh
	}
	sheet, err := session.LoadSheet(in)
	if err != nil {
		return err
	}

	_, marks, err := sheet.Prepare(cat)
	if err != nil {
		var verrs session.ValidationErrors
		if errors.As(err, &verrs) {
			for _, p := range verrs {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", p.Field, p.Message)
			}
			return fmt.Errorf("mark sheet has %d problem(s)", len(verrs))
		}
		return err
	}

	engine := grading.NewEngine(grading.WithCatalog(cat), grading.WithLogger(logger))
	outcome, err := engine.Compute(marks)
	if err != nil {
		return err
	}
	sb := report.New(sheet.Student, outcome, time.Now())

	w := cmd.OutOrStdout()
	if outPath != "" {
		fh, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer fh.Close()
		w = fh
	}
	if err := report.Render(w, f, sb); err != nil {
		return err
	}
	logger.Info("scoreboard computed",
		zap.String("ref", sb.Ref),
		zap.String("index_number", sheet.Student.IndexNumber),
		zap.Int("total_points", outcome.TotalPoints),
		zap.String("mean_grade", string(outcome.MeanGrade)))
	return nil
}
