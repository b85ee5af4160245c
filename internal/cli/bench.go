package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/webriots/lazyseq/internal/walk"
)

type benchResult struct {
	Kind     string
	Advances int
	Elapsed  time.Duration
	Resumes  uint64
}

func (r benchResult) nsPerOp() float64 {
	if r.Advances == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Advances)
}

// runBench drives each generator kind for n values. The recursive case
// produces its values from the bottom of a chain depth levels deep.
func runBench(n, depth int) []benchResult {
	results := make([]benchResult, 0, 3)

	nums := walk.Naturals()
	start := time.Now()
	for i := 0; i < n && nums.Advance(); i++ {
		_ = nums.Current()
	}
	results = append(results, benchResult{Kind: "generator", Advances: n, Elapsed: time.Since(start), Resumes: nums.Resumes()})
	nums.Close()

	rg := walk.Upto(n)
	start = time.Now()
	count := 0
	for it := rg.Begin(); !it.Done(); it.Next() {
		_ = it.Value()
		count++
	}
	results = append(results, benchResult{Kind: "range", Advances: count, Elapsed: time.Since(start), Resumes: rg.Resumes()})

	g := walk.Chain(depth, n)
	start = time.Now()
	count = 0
	for g.Advance() {
		_ = g.Value()
		count++
	}
	results = append(results, benchResult{Kind: "recursive/" + strconv.Itoa(depth), Advances: count, Elapsed: time.Since(start), Resumes: g.Resumes()})

	return results
}

func (a *app) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time advancing each generator kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Iterations <= 0 {
				return fmt.Errorf("iterations must be positive, got %d", a.cfg.Iterations)
			}
			results := runBench(a.cfg.Iterations, a.cfg.Depth)

			data := pterm.TableData{{"kind", "advances", "ns/op", "resumes"}}
			for _, r := range results {
				data = append(data, []string{
					r.Kind,
					strconv.Itoa(r.Advances),
					strconv.FormatFloat(r.nsPerOp(), 'f', 1, 64),
					strconv.FormatUint(r.Resumes, 10),
				})
				a.log.Debug("bench", "kind", r.Kind, "elapsed", r.Elapsed)
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
	cmd.Flags().Int("iterations", 1000000, "values to produce per generator kind")
	cmd.Flags().Int("depth", 16, "delegation depth for the recursive generator")
	return cmd
}
