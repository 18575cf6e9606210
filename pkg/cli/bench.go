package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/foundationdata/widgetboard/pkg/perf"
)

func (c *CLI) benchCommand() *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the drag and redraw hot paths against their budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite := perf.Suite()
			if only != "" {
				suite = filterBench(suite, only)
				if len(suite) == 0 {
					return fmt.Errorf("no benchmark named %q", only)
				}
			}
			results := perf.Run(suite)
			budgets := perf.DefaultThresholds()
			violations := perf.CheckRegression(results, budgets)

			failed := map[string]bool{}
			for _, v := range violations {
				failed[v.Threshold.Name] = true
			}
			t := newTable("benchmark", "ns/op", "budget", "B/op", "budget", "")
			for _, b := range budgets {
				r, ok := results[b.Name]
				if !ok {
					continue
				}
				status := "ok"
				if failed[b.Name] {
					status = "OVER"
				}
				t.Row(b.Name,
					time.Duration(r.NsPerOp()).String(), time.Duration(b.MaxNs).String(),
					fmt.Sprint(r.AllocedBytesPerOp()), fmt.Sprint(b.MaxAlloc), status)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			if len(violations) > 0 {
				return fmt.Errorf("%d budget(s) exceeded", len(violations))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "run just the named benchmark")
	return cmd
}

func filterBench(suite []perf.Bench, name string) []perf.Bench {
	for _, b := range suite {
		if b.Name == name {
			return []perf.Bench{b}
		}
	}
	return nil
}
