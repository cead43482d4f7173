package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	sparse "github.com/edp1096/sparse-aat"
)

func newAnalyzeCommand(a *App) *cobra.Command {
	var (
		printLengths bool
		printLimit   int
		markowitz    bool
		stats        bool
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Count nonzeros of A+A' per column and the pattern symmetry of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			m, description, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}
			defer m.Destroy()

			fmt.Fprintf(w, "\n%s\n\n", description)
			fmt.Fprintf(w, "Matrix is %d x %d with %d entries.\n\n", m.Size, m.Size, m.ElementCount())

			c := m.CSC()
			if err := c.Validate(); err != nil {
				return fmt.Errorf("invalid matrix: %w", err)
			}

			var tr sparse.Tracer
			if a.config.Debug || a.config.Annotate > 0 {
				tr = sparse.NewLogTracer(a.logger, a.config.Annotate)
			}

			start := time.Now()
			pat, err := c.AAT(tr)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			a.logger.Debug().Dur("elapsed", elapsed).Uint64("nzaat", pat.NZAAT).Msg("analyzed")

			pat.Info.Write(w)

			if printLengths {
				limit := c.N
				if printLimit > 0 && int64(printLimit) < limit {
					limit = int64(printLimit)
				}
				fmt.Fprintln(w, "Column lengths of A+A':")
				for j := int64(0); j < limit; j++ {
					fmt.Fprintf(w, "%8d %8d\n", j+1, pat.Len[j])
				}
				if limit < c.N {
					fmt.Fprintf(w, "Length list truncated.\n")
				}
				fmt.Fprintln(w)
			}

			if markowitz {
				mk, err := sparse.MarkowitzCounts(c)
				if err != nil {
					return err
				}
				largest := int64(0)
				for _, p := range mk.Prod {
					largest = max(largest, p)
				}
				fmt.Fprintf(w, "Singletons = %d\n", mk.Singletons)
				fmt.Fprintf(w, "Largest Markowitz product = %d\n\n", largest)
			}

			if stats {
				fmt.Fprintf(w, "Statistics:\n")
				fmt.Fprintf(w, "Analyze time = %.6f.\n\n", elapsed.Seconds())
				a.printResourceUsage(cmd)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&printLengths, "lengths", "l", false, "print per-column lengths of A+A'")
	cmd.Flags().IntVarP(&printLimit, "limit", "n", 9, "print the first n lengths (0 for all)")
	cmd.Flags().BoolVarP(&markowitz, "markowitz", "m", false, "print Markowitz statistics")
	cmd.Flags().BoolVarP(&stats, "stats", "s", false, "print timing and memory usage")
	return cmd
}

func newReportCommand(a *App) *cobra.Command {
	var pattern bool

	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Print and check a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			m, description, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}
			defer m.Destroy()

			fmt.Fprintf(w, "\n%s\n\n", description)
			if pattern {
				m.Print(w, false, true)
			}
			return m.CSC().Report(w, a.config.PrintLevel)
		},
	}

	cmd.Flags().BoolVarP(&pattern, "pattern", "p", false, "also draw the pattern grid")
	return cmd
}
