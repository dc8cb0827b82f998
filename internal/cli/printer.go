package cli

// This file implements terminal rendering for taxonomy output: colored
// category/severity labels and the tabular error listing. Colors mirror the
// severity tiers so a critical security error is immediately visible.

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

func init() {
	// Plain output when piped; keeps JSON and grep-ability intact.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}
}

var categoryStyles = map[taxonomy.Category]*pterm.Style{
	taxonomy.CategoryModel:         pterm.NewStyle(pterm.FgCyan),
	taxonomy.CategoryTool:          pterm.NewStyle(pterm.FgBlue),
	taxonomy.CategorySecurity:      pterm.NewStyle(pterm.FgRed),
	taxonomy.CategoryResource:      pterm.NewStyle(pterm.FgYellow),
	taxonomy.CategoryOrchestration: pterm.NewStyle(pterm.FgMagenta),
	taxonomy.CategoryData:          pterm.NewStyle(pterm.FgGreen),
}

var severityStyles = map[taxonomy.Severity]*pterm.Style{
	taxonomy.SeverityCritical: pterm.NewStyle(pterm.FgRed),
	taxonomy.SeverityHigh:     pterm.NewStyle(pterm.FgYellow),
	taxonomy.SeverityMedium:   pterm.NewStyle(pterm.FgCyan),
	taxonomy.SeverityLow:      pterm.NewStyle(pterm.FgWhite),
}

// CategoryLabel returns the category name styled with its display color.
func CategoryLabel(c taxonomy.Category) string {
	if style, ok := categoryStyles[c]; ok {
		return style.Sprint(string(c))
	}
	return string(c)
}

// SeverityLabel returns the severity name styled with its display color.
func SeverityLabel(s taxonomy.Severity) string {
	if style, ok := severityStyles[s]; ok {
		return style.Sprint(string(s))
	}
	return string(s)
}

// RetryLabel renders the retryable flag the way the listing shows it.
func RetryLabel(retryable bool) string {
	if retryable {
		return "retry"
	}
	return "no-retry"
}

// DefinitionRow renders one catalog definition as a table row.
func DefinitionRow(def taxonomy.AgentError) []string {
	return []string{
		pterm.Bold.Sprintf("%d", def.Code),
		CategoryLabel(def.Category),
		SeverityLabel(def.Severity),
		RetryLabel(def.Retryable),
		def.Name,
	}
}

// Table renders rows as a headered table to w.
func Table(w io.Writer, data [][]string) {
	if len(data) == 0 {
		return
	}
	_ = pterm.DefaultTable.WithWriter(w).WithHasHeader().WithData(pterm.TableData(data)).Render()
}
