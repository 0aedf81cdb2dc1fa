package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/dist/internal/app"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/ui/output"
	"go.trai.ch/dist/internal/ui/style"
	"golang.org/x/term"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newOutput(w io.Writer) *termenv.Output {
	return output.NewWithProfile(w, output.ColorProfileFor(w, isTerminal))
}

func paint(out *termenv.Output, s string, color lipgloss.Color) string {
	return out.String(s).Foreground(out.Color(string(color))).String()
}

func writeLine(out *termenv.Output, s string) {
	_, _ = fmt.Fprintln(out, s)
}

// RenderUse writes the outcome of `dist use`.
func RenderUse(out *termenv.Output, res app.UseResult) {
	v := res.Resolution.Requested

	switch res.Resolution.Classification {
	case domain.ClassificationAlreadyActive:
		writeLine(out, paint(out, style.Check, style.Green)+" '"+v+"' is the current active distribution version")
	case domain.ClassificationInstalledInactive:
		if res.Activation != nil && !res.Activation.Changed {
			writeLine(out, paint(out, style.Check, style.Green)+" '"+v+"' is the current active distribution version")
			return
		}
		writeLine(out, paint(out, style.Check, style.Green)+" '"+v+"' successfully set as the active distribution")
	case domain.ClassificationCatalogOnly:
		writeLine(out, paint(out, style.Cross, style.Red)+" Distribution '"+v+"' not found")
		writeLine(out, "  Run 'dist pull "+v+"' to fetch and set the distribution as the active distribution")
	case domain.ClassificationUnknown:
		writeLine(out, paint(out, style.Cross, style.Red)+" Distribution '"+v+"' not found")
		writeLine(out, "  '"+v+"' is not a valid distribution. Use 'dist list --all' for the available distributions list")
		renderSuggestions(out, res.Suggestions)
	}
}

// RenderResolve writes the outcome of `dist resolve`.
func RenderResolve(out *termenv.Output, res app.ResolveResult) {
	r := res.Resolution
	writeLine(out, r.Requested+" "+paint(out, style.Arrow, style.Slate)+" "+paint(out, r.Classification.String(), classificationColor(r.Classification)))

	if r.Match != nil {
		writeLine(out, "  channel: "+r.Match.Channel)
		if r.Match.Distribution.DownloadURL != "" {
			writeLine(out, "  url:     "+r.Match.Distribution.DownloadURL)
		}
	}
	if r.Active.IsSet() {
		line := "  active:  " + r.Active.Version()
		if r.DanglingActive {
			line += " " + paint(out, "(not installed)", style.Yellow)
		}
		writeLine(out, line)
	}
	if r.Classification == domain.ClassificationUnknown {
		renderSuggestions(out, res.Suggestions)
	}
}

// RenderCurrent writes the outcome of `dist current`.
func RenderCurrent(out *termenv.Output, cur domain.CurrentVersion) {
	if !cur.Active.IsSet() {
		writeLine(out, paint(out, style.Circle, style.Slate)+" No active distribution")
		return
	}
	if cur.Dangling {
		writeLine(out, paint(out, style.Dot, style.Yellow)+" "+cur.Active.Version()+" "+paint(out, "(not installed)", style.Yellow))
		return
	}
	writeLine(out, paint(out, style.Dot, style.Green)+" "+cur.Active.Version())
}

// RenderList writes the outcome of `dist list`.
func RenderList(out *termenv.Output, res app.ListResult) {
	writeLine(out, paint(out, "Installed distributions", style.Iris))
	if res.Installed.Len() == 0 {
		writeLine(out, "  "+paint(out, "none", style.Slate))
	}
	for _, v := range res.Installed.Versions() {
		writeLine(out, "  "+marker(out, res, v, true)+" "+v)
	}

	if res.Catalog == nil {
		return
	}
	for _, ch := range res.Catalog.Channels() {
		writeLine(out, "")
		writeLine(out, paint(out, "Channel "+ch.Name(), style.Iris))
		if ch.Len() == 0 {
			writeLine(out, "  "+paint(out, "none", style.Slate))
		}
		for _, d := range ch.Distributions() {
			installed := res.Installed.Contains(d.Version)
			line := "  " + marker(out, res, d.Version, installed) + " " + d.Version
			if installed {
				line += " " + paint(out, "(installed)", style.Slate)
			}
			writeLine(out, line)
		}
	}
}

func marker(out *termenv.Output, res app.ListResult, version string, installed bool) string {
	switch {
	case res.Active.Matches(version):
		return paint(out, style.Dot, style.Green)
	case installed:
		return paint(out, style.Check, style.Slate)
	default:
		return paint(out, style.Circle, style.Slate)
	}
}

func renderSuggestions(out *termenv.Output, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	writeLine(out, "  Did you mean: "+strings.Join(suggestions, ", ")+"?")
}

func classificationColor(c domain.Classification) lipgloss.Color {
	switch c {
	case domain.ClassificationAlreadyActive, domain.ClassificationInstalledInactive:
		return style.Green
	case domain.ClassificationCatalogOnly:
		return style.Yellow
	default:
		return style.Red
	}
}
