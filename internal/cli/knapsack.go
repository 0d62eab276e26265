package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/recviz/pkg/pipeline"
)

// knapsackOpts holds the command-line flags for the knapsack command.
type knapsackOpts struct {
	weights  string // comma-separated item weights
	values   string // comma-separated item values
	capacity int    // knapsack capacity W
	mode     string // enumeration mode: "dfs" or "dp"
	formats  string // comma-separated output formats
	output   string // output file or base path
	noCache  bool   // bypass artifact cache
}

// knapsackCommand creates the knapsack visualization command.
//
// In dfs mode (the default) it draws the full recursion tree: every
// state (i, w, v) the brute-force solver visits, with "Skip item i" /
// "Pick item i" edges. In dp mode it draws the bottom-up table as a
// derivation DAG with one node per (i, w) cell.
func (c *CLI) knapsackCommand() *cobra.Command {
	opts := knapsackOpts{mode: pipeline.ModeDFS}

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Visualize the 0/1 knapsack state tree",
		Long: `Visualize the 0/1 knapsack state space.

Examples:
  recviz knapsack --weights 2,3,4 --values 3,4,5 --capacity 5
  recviz knapsack --weights 2,3,4 --values 3,4,5 --capacity 5 --mode dp
  recviz knapsack -w 2,3 --values 3,4 -W 5 --format html,svg -o tree.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := pipeline.Options{
				Problem:  pipeline.ProblemKnapsack,
				Mode:     opts.mode,
				Weights:  opts.weights,
				Values:   opts.values,
				Capacity: opts.capacity,
				Formats:  c.parseFormats(opts.formats),
				Title:    "0/1 Knapsack State Tree",
			}

			defaultBase := "knapsack_tree"
			if opts.mode == pipeline.ModeDP {
				defaultBase = "knapsack_dp_tree"
				popts.Title = "0/1 Knapsack DP Table"
			}

			_, err := c.runAndWrite(cmd.Context(), popts, opts.output, defaultBase, opts.noCache)
			if err != nil {
				return err
			}
			printSuccess("Generated knapsack visualization")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.weights, "weights", "w", "", "item weights (comma-separated)")
	cmd.Flags().StringVar(&opts.values, "values", "", "item values (comma-separated)")
	cmd.Flags().IntVarP(&opts.capacity, "capacity", "W", 0, "knapsack capacity")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", opts.mode, "enumeration mode: dfs (default), dp")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html (default), svg, png, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (or base path for multiple formats)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass artifact cache")

	return cmd
}
