package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geomgraph/internal/demand"
)

func (a *app) statsCmd() *cobra.Command {
	var (
		mode string
		top  int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the network and the demand drawn from it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return errors.New("--top must be ≥ 0")
			}
			g, connected, err := a.buildNetwork(cmd)
			if err != nil {
				return err
			}
			box, err := g.BoundingBox()
			if err != nil {
				return err
			}
			reqs, err := a.generate(cmd, g, mode)
			if err != nil {
				return err
			}
			s := demand.Summarize(reqs)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "nodes\t%d\n", g.NodeCount())
			fmt.Fprintf(tw, "connections\t%d\n", g.ConnectionCount())
			fmt.Fprintf(tw, "bounding box\t[%g,%g]x[%g,%g]\n", box.MinX, box.MaxX, box.MinY, box.MaxY)
			fmt.Fprintf(tw, "strongly connected\t%t\n", connected)
			fmt.Fprintf(tw, "requests\t%d\n", s.Requests)
			fmt.Fprintf(tw, "mean distance\t%.3f\n", s.MeanDistance)
			fmt.Fprintf(tw, "max distance\t%.3f\n", s.MaxDistance)
			fmt.Fprintf(tw, "clamped draws\t%d\n", g.ClampedDraws())
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "NODE\tPICKUPS\tDELIVERIES\tTOTAL")
			for i, c := range s.Nodes {
				if top > 0 && i >= top {
					break
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", c.Node, c.Pickups, c.Deliveries, c.Total())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "sampler: gaussian|uniform (overrides config)")
	cmd.Flags().IntVar(&top, "top", 10, "busiest nodes to list (0 lists all)")
	return cmd
}
