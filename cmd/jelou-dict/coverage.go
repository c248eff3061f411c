package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errCoverage = errors.New("coverage check failed")

func coverageCommand(deps *runtimeDeps) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "coverage",
		Short: "Check every dictionary word converts with no gaps",
		Long: `Resolve, convert and rule-check the pronunciation of every dictionary
word. Words holding an unknown phoneme code or a symbol no rule consumes are
listed and the command exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := deps.app.Pronounce.CheckCoverage(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, f := range report.Failures {
				if limit > 0 && i == limit {
					fmt.Fprintf(out, "... %d more\n", len(report.Failures)-limit)
					break
				}
				if f.Err != nil {
					fmt.Fprintf(out, "%s\t%s\t%v\n", f.Word, f.Variant, f.Err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\tno rule for %v\n", f.Word, f.Variant, f.Uncovered)
			}
			fmt.Fprintf(out, "%d words scanned, %d failures\n", report.Words, len(report.Failures))

			if !report.OK() {
				return errCoverage
			}
			return nil
		},
	}

	c.Flags().IntVar(&limit, "limit", 50, "maximum failures to print (0 = all)")
	return c
}
