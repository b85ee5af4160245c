package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webriots/lazyseq"
	"github.com/webriots/lazyseq/internal/walk"
)

func (a *app) natseqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "natseq",
		Short: "Print the first natural numbers from an endless generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nums := walk.Naturals()
			defer nums.Close()

			out := cmd.OutOrStdout()
			for i := 0; i < a.cfg.Count; i++ {
				if !nums.Advance() {
					break
				}
				fmt.Fprintln(out, nums.Current())
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 10, "how many numbers to print")
	return cmd
}

func (a *app) rangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Iterate a finite range generator with begin/end iterators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rg := walk.Upto(a.cfg.Count)
			defer rg.Close()

			var parts []string
			for it := rg.Begin(); !it.Equal(rg.End()); it.Next() {
				parts = append(parts, strconv.Itoa(it.Value()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
	cmd.Flags().Int("count", 10, "length of the range")
	return cmd
}

func (a *app) treeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Walk a complete binary tree with a recursive generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Depth < 0 {
				return fmt.Errorf("depth must not be negative, got %d", a.cfg.Depth)
			}
			root := walk.Complete(a.cfg.Depth)

			var g *lazyseq.Recursive[int]
			switch a.cfg.Order {
			case "pre":
				g = walk.PreOrder(root)
			case "in":
				g = walk.InOrder(root)
			default:
				return fmt.Errorf("unknown order %q", a.cfg.Order)
			}
			defer g.Close()

			var parts []string
			for v := range g.All() {
				parts = append(parts, strconv.Itoa(v))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			a.log.Info("tree walked", "order", a.cfg.Order, "values", len(parts), "resumes", g.Resumes())
			return nil
		},
	}
	cmd.Flags().Int("depth", 3, "depth of the tree")
	cmd.Flags().String("order", "pre", "traversal order: pre or in")
	return cmd
}

func (a *app) chainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Show resumption counts for a deep chain of delegations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := walk.Chain(a.cfg.Depth, a.cfg.Count)
			defer g.Close()

			out := cmd.OutOrStdout()
			var (
				n    int
				prev uint64
			)
			for g.Advance() {
				fmt.Fprintf(out, "value=%d resumes=%d\n", g.Value(), g.Resumes()-prev)
				prev = g.Resumes()
				n++
			}
			fmt.Fprintf(out, "done values=%d resumes=%d\n", n, g.Resumes())
			return nil
		},
	}
	cmd.Flags().Int("depth", 16, "number of delegating levels")
	cmd.Flags().Int("count", 3, "values produced by the innermost level")
	return cmd
}
