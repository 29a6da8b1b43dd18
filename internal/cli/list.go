package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipremove/pkg/depgraph"
	"github.com/matzehuels/pipremove/pkg/pip"
)

// listCommand creates the list command, which prints the installed packages
// with their resolved dependency and dependent counts.
func (c *CLI) listCommand() *cobra.Command {
	var python string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages and their dependency counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			provider, err := pip.DiscoverEnv(ctx, python, func(format string, args ...any) {
				c.Logger.Warnf(format, args...)
			})
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			dists, err := provider.ListInstalled(ctx)
			if err != nil {
				return err
			}
			built, err := depgraph.Build(dists, depgraph.BuildOptions{
				Logf: func(format string, args ...any) { c.Logger.Warnf(format, args...) },
			})
			if err != nil {
				return err
			}
			g := built.Graph
			prog.done(fmt.Sprintf("Scanned %d packages", g.PackageCount()))

			for _, name := range g.Names() {
				p, _ := g.Package(name)
				detail := fmt.Sprintf("%d deps, required by %d", len(g.Requires(name)), len(g.RequiredBy(name)))
				fmt.Println(StyleValue.Render(name) + " " +
					StyleDim.Render(p.Version) + "  " + StyleDim.Render(detail))
			}
			printKeyValue("Packages", fmt.Sprintf("%d", g.PackageCount()))
			printKeyValue("Edges", fmt.Sprintf("%d", g.EdgeCount()))
			return nil
		},
	}

	cmd.Flags().StringVar(&python, "python", "", "python interpreter to operate on (default: python3)")
	return cmd
}
