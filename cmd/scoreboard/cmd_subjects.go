package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mind-engage/kcse-scoreboard/internal/grading"
	"github.com/mind-engage/kcse-scoreboard/internal/session"
)

func newSubjectsCmd() *cobra.Command {
	var optionalOnly bool
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List the subjects in the grading scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			subjects := cat.Subjects()
			if optionalOnly {
				subjects = cat.Options()
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tSUBJECT\tMANDATORY")
			for _, s := range subjects {
				mand := ""
				if s.Mandatory {
					mand = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Code, s.Name, mand)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&optionalOnly, "optional", false, "only list optional subjects")
	return cmd
}

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale [code]",
		Short: "Show a subject's grading scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			s, ok := cat.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", grading.ErrUnknownSubject, args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", s.Code, s.Name)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GRADE\tMARKS\tPOINTS")
			for _, b := range s.Bands {
				fmt.Fprintf(tw, "%s\t%v-%v\t%d\n", b.Grade, b.Min, b.Max, b.Points)
			}
			return tw.Flush()
		},
	}
}

func newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade [code] [mark]",
		Short: "Grade a single subject mark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			mark, err := session.ParseMark(args[1])
			if err != nil {
				return err
			}
			e := grading.NewEngine(grading.WithCatalog(cat), grading.WithLogger(logger))
			b, err := e.GradeFor(args[0], mark)
			if err != nil {
				return err
			}
			s, _ := cat.Lookup(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v: %s (%d points)\n", s.Name, mark, b.Grade, b.Points)
			return nil
		},
	}
}
