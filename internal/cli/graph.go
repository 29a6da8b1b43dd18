package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipremove/pkg/errors"
	"github.com/matzehuels/pipremove/pkg/pipeline"
	"github.com/matzehuels/pipremove/pkg/render"
)

// graphCommand creates the graph command, which exports what a removal would
// do as a DOT or SVG graph without touching the environment.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		python   string
	)

	cmd := &cobra.Command{
		Use:   "graph PACKAGE...",
		Short: "Export the removal's dependency graph as DOT or SVG",
		Long: `Export the dependency picture of a hypothetical removal.

Packages that would be removed are drawn in red, retained packages in amber
together with the dependents that keep them, and whitelisted packages in
grey. Nothing is uninstalled.

Examples:
  pipremove graph requests                    # DOT to stdout
  pipremove graph -f svg -o out.svg requests  # rendered SVG`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			if format != "dot" && format != "svg" {
				return errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (available: dot, svg)", format)
			}

			cfg, err := loadDefaultConfig()
			if err != nil {
				return err
			}
			if python == "" {
				python = cfg.Python
			}

			runner, err := c.newRunner(ctx, python, false)
			if err != nil {
				return err
			}
			res, err := runner.Plan(ctx, pipeline.Options{
				Targets:   args,
				Protected: cfg.Protected,
			})
			if err != nil {
				return err
			}
			if len(res.Analysis.Missing) > 0 {
				printWarning("Not installed: %s", strings.Join(res.Analysis.Missing, ", "))
			}

			dot := render.ToDOT(res.Graph, res.Analysis, render.Options{Detailed: detailed})
			data := []byte(dot)
			if format == "svg" {
				if data, err = render.RenderSVG(dot); err != nil {
					return err
				}
			}

			if output == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			printSuccess("Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format (dot, svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include versions in node labels")
	cmd.Flags().StringVar(&python, "python", "", "python interpreter to operate on (default: python3)")

	return cmd
}
