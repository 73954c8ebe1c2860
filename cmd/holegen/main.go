package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holegen",
		Short: "Procedural golf hole generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(queryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// holeFlags are the generation parameters shared by every subcommand.
type holeFlags struct {
	config    string
	length    int
	par       int
	dogleg    bool
	intensity float64
	seed      int64
	verbose   bool
}

func (f *holeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML parameter file")
	cmd.Flags().IntVar(&f.length, "length", 0, "hole length in yards (0 derives it from par)")
	cmd.Flags().IntVar(&f.par, "par", 4, "par (3, 4 or 5)")
	cmd.Flags().BoolVar(&f.dogleg, "dogleg", false, "bend the hole")
	cmd.Flags().Float64Var(&f.intensity, "intensity", 1, "dogleg intensity")
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "random seed")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log generation stages")
}

func generateCmd() *cobra.Command {
	var (
		hf  holeFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a hole and write its snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &hf, out)
		},
	}
	hf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func queryCmd() *cobra.Command {
	var (
		hf       holeFlags
		snapshot string
		x, z     int
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print height, slope, band and feature at a grid point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, &hf, snapshot, x, z)
		},
	}
	hf.register(cmd)
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "query a saved snapshot instead of generating")
	cmd.Flags().IntVarP(&x, "distance", "x", 0, "grid column, yards from the tee")
	cmd.Flags().IntVarP(&z, "lateral", "z", 0, "grid row across the hole")
	return cmd
}
