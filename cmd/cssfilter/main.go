// Command cssfilter prints CSS filter chains that recolor black elements.
//
// Usage:
//
//	cssfilter [flags] color...
//
// Each color is a hex value (#d20f39, d20f39, #f00) or a CSS color name.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/cssfilter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose   bool
		showLoss  bool
		listNames bool
	)

	cmd := &cobra.Command{
		Use:   "cssfilter [flags] color...",
		Short: "Find CSS filter chains that turn black into a target color",
		Args: func(cmd *cobra.Command, args []string) error {
			if listNames {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				cssfilter.SetLogger(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			if listNames {
				for _, name := range cssfilter.ColorNames() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			for _, arg := range args {
				if err := printFilter(out, arg, showLoss); err != nil {
					return err
				}
			}

			st := cssfilter.CacheStats()
			cssfilter.Logger().Debug("cssfilter: cache",
				"entries", st.Len,
				"hits", st.Hits,
				"misses", st.Misses,
				"hit_rate", st.HitRate())
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every local search to stderr")
	cmd.Flags().BoolVar(&showLoss, "loss", false, "also print the loss and the color the filter actually produces")
	cmd.Flags().BoolVar(&listNames, "list-names", false, "list the accepted color names and exit")
	return cmd
}

func printFilter(out io.Writer, arg string, showLoss bool) error {
	c, err := cssfilter.ParseColor(arg)
	if err != nil {
		return err
	}

	if !showLoss {
		_, err = fmt.Fprintf(out, "%s\t%s\n", c, cssfilter.FilterRGB(c.R, c.G, c.B))
		return err
	}

	res := cssfilter.Solve(c)
	_, err = fmt.Fprintf(out, "%s\t%s\tloss=%.5f\trenders=%s\n", c, res.CSS(), res.Loss, res.RGB())
	return err
}
