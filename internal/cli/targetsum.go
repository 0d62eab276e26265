package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/recviz/pkg/pipeline"
)

// targetSumOpts holds the command-line flags for the targetsum command.
type targetSumOpts struct {
	nums    string // comma-separated array elements
	target  int    // target sum
	formats string // comma-separated output formats
	output  string // output file or base path
	noCache bool   // bypass artifact cache
}

// targetSumCommand creates the Target Sum Ways visualization command.
//
// The recursion tree assigns + or - to each element in turn; leaves
// whose running sum equals the target are goal leaves, and every node
// on a root-to-goal-leaf path is highlighted. The ways count is printed
// alongside the artifact paths.
func (c *CLI) targetSumCommand() *cobra.Command {
	var opts targetSumOpts

	cmd := &cobra.Command{
		Use:   "targetsum",
		Short: "Visualize the Target Sum Ways recursion tree",
		Long: `Visualize the Target Sum Ways recursion tree.

Each element of nums is signed + or -; the tree shows every partial
sum, highlights the paths that reach the target, and reports how many
sign assignments do.

Examples:
  recviz targetsum --nums 1,1,1 --target 2
  recviz targetsum -n 1,2,1 -t 0 --format html,json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := pipeline.Options{
				Problem: pipeline.ProblemTargetSum,
				Nums:    opts.nums,
				Target:  opts.target,
				Formats: c.parseFormats(opts.formats),
				Title:   "Find Target Sum Ways - DFS Tree",
			}

			result, err := c.runAndWrite(cmd.Context(), popts, opts.output, "target_sum_tree", opts.noCache)
			if err != nil {
				return err
			}

			printWays(opts.target, result.Ways)
			printSuccess("Generated target sum visualization")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.nums, "nums", "n", "", "array elements (comma-separated)")
	cmd.Flags().IntVarP(&opts.target, "target", "t", 0, "target sum")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html (default), svg, png, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (or base path for multiple formats)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass artifact cache")

	return cmd
}
