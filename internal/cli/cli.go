// Package cli implements the pipremove command-line interface.
//
// This package provides commands for recursively removing installed Python
// packages, listing the installed set, and exporting the dependency picture
// of a removal. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - remove: Compute and execute (or dry-run) a recursive removal
//   - list: Show installed packages from the active environment
//   - graph: Export the removal's dependency graph as DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pipremove/pkg/buildinfo"
	"github.com/matzehuels/pipremove/pkg/pip"
	"github.com/matzehuels/pipremove/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "pipremove"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogError = log.ErrorLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pipremove uninstalls pip packages recursively",
		Long:         `Pipremove removes an installed Python package together with every dependency that nothing else still needs, computed from the installed dependency graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner wires the environment provider and pip remover into a pipeline
// runner. The logger is taken from ctx so command-scoped loggers flow through.
// python may be empty to use the default interpreter.
func (c *CLI) newRunner(ctx context.Context, python string, quiet bool) (*pipeline.Runner, error) {
	logger := loggerFromContext(ctx)
	provider, err := pip.DiscoverEnv(ctx, python, func(format string, args ...any) {
		logger.Warnf(format, args...)
	})
	if err != nil {
		return nil, err
	}
	remover := &pip.PipRemover{
		Python: python,
		Quiet:  quiet,
		Logf:   func(format string, args ...any) { logger.Debugf(format, args...) },
	}
	return pipeline.NewRunner(provider, remover, logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/pipremove/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
