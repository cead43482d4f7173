package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sparse "github.com/edp1096/sparse-aat"
)

func newGenCommand(a *App) *cobra.Command {
	var (
		size   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random sparse matrix file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("seed") {
				a.config.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("density") {
				a.config.Density, _ = flags.GetFloat64("density")
			}
			if flags.Changed("diagonal") {
				a.config.Diagonal, _ = flags.GetBool("diagonal")
			}

			rng := sparse.InitRandom(a.config.Seed)
			c, err := sparse.RandomPattern(rng, size, a.config.Density, a.config.Diagonal)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("error creating file: %v", err)
				}
				defer file.Close()
				w = file
			}

			description := fmt.Sprintf("Random %dx%d, density %g, seed %d", size, size, a.config.Density, a.config.Seed)
			if err := sparse.WriteMatrix(w, c, description); err != nil {
				return err
			}
			a.logger.Info().Int64("n", size).Int64("nz", c.Nnz()).Str("output", output).Msg("generated")
			return nil
		},
	}

	cmd.Flags().Int64VarP(&size, "size", "n", 10, "matrix size")
	cmd.Flags().Int64("seed", 0, "random seed (0 uses a fixed default)")
	cmd.Flags().Float64("density", sparse.DEFAULT_DENSITY, "off-diagonal density")
	cmd.Flags().Bool("diagonal", true, "include the full diagonal")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
