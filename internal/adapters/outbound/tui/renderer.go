package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autoheal/autoheal/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnStyle          = lipgloss.NewStyle().Foreground(warning)
	fileStyle          = lipgloss.NewStyle().Foreground(dim)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderIssues renders a scan result. Paths are shown relative to root.
func RenderIssues(root string, issues *domain.IssueSet) string {
	var b strings.Builder

	title := headerStyle.Render("autoheal")
	var subtitle string
	if issues.IsEmpty() {
		subtitle = passStyle.Render("No issues found")
	} else {
		subtitle = warnStyle.Render(fmt.Sprintf("Found %d issues", issues.Total()))
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n")

	if len(issues.InvalidFilenames) > 0 {
		renderSectionHeader(&b, "Invalid Filenames", len(issues.InvalidFilenames))
		for _, issue := range issues.InvalidFilenames {
			fmt.Fprintf(&b, "    %s %s %s %s",
				warnStyle.Render("●"),
				issue.OriginalName,
				dimStyle.Render("→"),
				titleStyle.Render(issue.Suggestion),
			)
			if dir := relDir(root, issue.Path); dir != "." {
				b.WriteString("  " + fileStyle.Render(dir+"/"))
			}
			b.WriteString("\n")
		}
	}

	if len(issues.MissingFiles) > 0 {
		renderSectionHeader(&b, "Missing Files", len(issues.MissingFiles))
		for _, m := range issues.MissingFiles {
			line := fmt.Sprintf("    %s %s", failStyle.Render("●"), m.File)
			if m.Reason != "" {
				line += "  " + faintStyle.Render(m.Reason)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderDryRunHint is printed after the issue list in dry-run mode.
func RenderDryRunHint() string {
	return "  " + hintStyle.Render("Dry run: no changes made. Run without --dry-run to fix these issues.") + "\n"
}

func renderSectionHeader(b *strings.Builder, title string, n int) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", n)),
	)
}

func relDir(root, path string) string {
	dir := filepath.Dir(path)
	if rel, err := filepath.Rel(root, dir); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(dir)
}
