package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"macsweep/internal/engine"
	"macsweep/internal/remove"
	"macsweep/pkg/utils"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	freedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// renderReport prints the run report: per-category outcomes, skips with
// their reasons, and the space accounting.
func renderReport(w io.Writer, report *engine.Report, mode remove.Mode) {
	if mode == remove.DryRun {
		fmt.Fprintln(w, headerStyle.Render("Dry run — nothing was removed"))
	} else {
		fmt.Fprintln(w, headerStyle.Render("Cleanup report"))
	}

	var lastCategory string
	for _, out := range report.Outcomes {
		if cat := out.Category.String(); cat != lastCategory {
			fmt.Fprintf(w, "\n%s\n", headerStyle.Render(cat))
			lastCategory = cat
		}
		switch out.Status {
		case remove.StatusSkipped:
			fmt.Fprintf(w, "  %s %s (%s)\n", skippedStyle.Render("skip"), out.Path, out.Reason)
		case remove.StatusSimulated:
			fmt.Fprintf(w, "  %s %s %s\n", dimStyle.Render("would remove"), out.Path, dimStyle.Render(utils.FormatBytes(out.SizeBytes)))
		default:
			fmt.Fprintf(w, "  removed %s %s\n", out.Path, dimStyle.Render(utils.FormatBytes(out.SizeBytes)))
		}
	}

	removed, skipped, simulated := report.Counts()
	fmt.Fprintln(w)
	if mode == remove.DryRun {
		fmt.Fprintf(w, "%d candidates, %s reclaimable\n", simulated, totalSimulated(report))
	} else {
		fmt.Fprintf(w, "%d removed, %d skipped — %s\n", removed, skipped,
			freedStyle.Render(utils.FormatBytes(report.TotalBytesFreed)+" freed"))
	}
	fmt.Fprintf(w, "%s\n", dimStyle.Render(fmt.Sprintf("took %s", report.FinishedAt.Sub(report.StartedAt).Round(1e7))))
}

func totalSimulated(report *engine.Report) string {
	var total int64
	for _, out := range report.Outcomes {
		if out.Status == remove.StatusSimulated {
			total += out.SizeBytes
		}
	}
	return utils.FormatBytes(total)
}
