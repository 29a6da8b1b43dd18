package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pipremove/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleRemove      = lipgloss.NewStyle().Foreground(colorRed)
	styleRetain      = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Analysis & Plan Output
// =============================================================================

// renderReport formats the analysis portion of a pipeline result: the plan,
// the retained packages with their blockers, still-required notices, and (in
// verbose mode) never-installed declared dependencies.
func renderReport(res *pipeline.Result, verbose bool) string {
	var b strings.Builder
	a := res.Analysis

	if len(a.Missing) > 0 {
		b.WriteString(styleIconError.Render(iconError) + " Not installed: " +
			StyleValue.Render(strings.Join(a.Missing, ", ")) + "\n")
	}

	for _, target := range a.Targets {
		if deps, ok := a.StillRequired[target]; ok {
			b.WriteString(styleIconWarning.Render(iconWarning) + " " +
				StyleWarning.Render(fmt.Sprintf("%s is still required by %s", target, strings.Join(deps, ", "))) + "\n")
		}
	}

	if len(a.Retained) > 0 {
		b.WriteString("Retained (still needed):\n")
		for _, name := range sortedKeys(a.Retained) {
			b.WriteString("  " + styleRetain.Render(name) + " " +
				StyleDim.Render(iconArrow+" required by "+strings.Join(a.Retained[name], ", ")) + "\n")
		}
	}

	if len(a.Protected) > 0 {
		b.WriteString("Protected (whitelisted):\n")
		for _, name := range a.Protected {
			b.WriteString("  " + StyleDim.Render(name) + "\n")
		}
	}

	if verbose && len(res.NeverInstalled) > 0 {
		b.WriteString("Declared but never installed:\n")
		for _, m := range res.NeverInstalled {
			b.WriteString("  " + StyleDim.Render(fmt.Sprintf("%s %s declared by %s", m.Dependency, iconArrow, m.Package)) + "\n")
		}
	}

	if len(res.Plan.Steps) == 0 {
		b.WriteString(styleIconInfo.Render(iconInfo) + " Nothing to remove\n")
		return b.String()
	}

	b.WriteString("Will remove (in order):\n")
	for i, name := range res.Plan.Steps {
		version := ""
		if p, ok := res.Graph.Package(name); ok && p.Version != "" {
			version = " " + StyleDim.Render(p.Version)
		}
		b.WriteString(fmt.Sprintf("  %2d. %s%s\n", i+1, styleRemove.Render(name), version))
	}
	return b.String()
}

// renderSummary formats the post-execution summary.
func renderSummary(res *pipeline.Result) string {
	var b strings.Builder
	if len(res.Removed) > 0 {
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " Removed " +
			StyleValue.Render(strings.Join(res.Removed, ", ")) + "\n")
	}
	for _, f := range res.Failed {
		b.WriteString(styleIconError.Render(iconError) + " Failed to remove " +
			StyleValue.Render(f.Name) + ": " + StyleDim.Render(f.Err.Error()) + "\n")
	}
	return b.String()
}

func sortedKeys(m map[string][]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
