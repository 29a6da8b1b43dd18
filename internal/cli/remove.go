package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipremove/pkg/errors"
	"github.com/matzehuels/pipremove/pkg/pipeline"
)

// removeOpts holds the command-line flags for the remove command.
type removeOpts struct {
	dryRun         bool   // compute and print the plan, never invoke pip
	yes            bool   // skip the confirmation prompt
	strict         bool   // abort when any target is not installed
	refuseRequired bool   // refuse targets other packages still require
	quiet          bool   // errors only, pass --quiet through to pip
	python         string // interpreter override
}

// removeCommand creates the remove command.
//
// The command computes the recursive removal set for the given targets,
// prints the plan with retention reasons, asks for confirmation, and hands
// the ordered plan to pip one package at a time. The exit code is non-zero
// when any target was not installed or any deletion failed.
func (c *CLI) removeCommand() *cobra.Command {
	var opts removeOpts

	cmd := &cobra.Command{
		Use:     "remove PACKAGE...",
		Aliases: []string{"rm", "uninstall"},
		Short:   "Remove packages together with their unused dependencies",
		Long: `Remove one or more packages recursively.

The removal set is the target plus every transitive dependency that no
surviving package still requires. Dependencies shared with packages you keep
are retained and listed with the package that needs them.

Examples:
  pipremove remove requests              # remove requests and orphaned deps
  pipremove remove --dry-run requests    # show the plan without removing
  pipremove remove -y flask jinja2       # several targets, no prompt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemove(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the plan without removing anything")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when any target is not installed")
	cmd.Flags().BoolVar(&opts.refuseRequired, "refuse-required", false, "refuse targets that other packages still require")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.Flags().StringVar(&opts.python, "python", "", "python interpreter to operate on (default: python3)")

	return cmd
}

func (c *CLI) runRemove(cmd *cobra.Command, args []string, opts removeOpts) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	verbose := c.Logger.GetLevel() <= LogDebug

	cfg, err := loadDefaultConfig()
	if err != nil {
		return err
	}
	if opts.quiet {
		c.SetLogLevel(LogError)
	}
	python := opts.python
	if python == "" {
		python = cfg.Python
	}

	runner, err := c.newRunner(ctx, python, opts.quiet)
	if err != nil {
		return err
	}

	spin := newSpinner("Scanning environment")
	if !opts.quiet {
		spin.Start()
	}
	res, err := runner.Plan(ctx, pipeline.Options{
		Targets:        args,
		Strict:         opts.strict || cfg.Strict,
		RefuseRequired: opts.refuseRequired,
		Protected:      cfg.Protected,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Print(renderReport(res, verbose))
	}
	if verbose {
		printDetail("run %s: scanned %d packages in %s, analyzed in %s",
			res.RunID, res.Stats.Packages, res.Stats.ScanTime.Round(time.Millisecond),
			res.Stats.AnalyzeTime.Round(time.Millisecond))
	}

	if opts.dryRun {
		return exitStatus(res)
	}
	if len(res.Plan.Steps) == 0 {
		return exitStatus(res)
	}

	if !opts.yes && !opts.quiet && !cfg.AssumeYes {
		if !confirm(fmt.Sprintf("Remove %d package(s)?", len(res.Plan.Steps))) {
			printInfo("Aborted")
			return nil
		}
	}

	if err := runner.Run(ctx, res); err != nil {
		return err
	}

	if opts.quiet {
		for _, f := range res.Failed {
			printError("Failed to remove %s: %v", f.Name, f.Err)
		}
	} else {
		fmt.Print(renderSummary(res))
	}
	return exitStatus(res)
}

// exitStatus converts a finished result into the command's error. Missing
// targets and per-item failures were already reported; this only decides the
// exit code.
func exitStatus(res *pipeline.Result) error {
	if res.Succeeded() {
		return nil
	}
	if n := len(res.Failed); n > 0 {
		return errors.New(errors.ErrCodeRemoveFailed, "%d package(s) failed to remove", n)
	}
	return errors.New(errors.ErrCodePackageNotFound, "%d requested package(s) not installed", len(res.Analysis.Missing))
}
