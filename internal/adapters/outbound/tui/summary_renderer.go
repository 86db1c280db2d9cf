package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/autoheal/autoheal/internal/domain"
)

// RenderHealingReport renders the end-of-run summary: counts of renamed and
// created files followed by every recorded error.
func RenderHealingReport(root string, report *domain.HealingReport) string {
	var b strings.Builder

	b.WriteString("\n  " + separatorLine + "\n")
	b.WriteString("  " + titleStyle.Render("Auto-healing summary") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	fmt.Fprintf(&b, "    %s %s\n", padRight("Files renamed", 16), countStyle(len(report.RenamedFiles), false))
	for _, r := range report.RenamedFiles {
		fmt.Fprintf(&b, "      %s %s %s\n",
			fileStyle.Render(relPath(root, r.From)),
			dimStyle.Render("→"),
			relPath(root, r.To),
		)
	}

	fmt.Fprintf(&b, "    %s %s\n", padRight("Files created", 16), countStyle(len(report.CreatedFiles), false))
	for _, c := range report.CreatedFiles {
		fmt.Fprintf(&b, "      %s %s\n", passStyle.Render("+"), relPath(root, c))
	}

	fmt.Fprintf(&b, "    %s %s\n", padRight("Errors", 16), countStyle(len(report.Errors), true))
	for _, e := range report.Errors {
		fmt.Fprintf(&b, "      %s %s\n", failStyle.Render("✗"), e)
	}

	b.WriteString("\n")
	return b.String()
}

// RenderPublishResult renders the outcome of the commit-and-push step.
func RenderPublishResult(res *domain.PublishResult) string {
	var line string
	switch res.Status {
	case domain.PublishSuccess:
		line = passStyle.Render("● changes committed and pushed")
		if len(res.Commit) >= 7 {
			line += "  " + faintStyle.Render(res.Commit[:7])
		}
	case domain.PublishNoChanges:
		line = dimStyle.Render("● nothing to commit")
	case domain.PublishPushFailed:
		line = warnStyle.Render("● committed but push failed") + "  " + dimStyle.Render(res.Error)
	default:
		line = failStyle.Render("● git operation failed") + "  " + dimStyle.Render(res.Error)
	}
	return "  " + sectionHeaderStyle.Render("Publish") + "\n    " + line + "\n\n"
}

func countStyle(n int, bad bool) string {
	s := fmt.Sprintf("%d", n)
	switch {
	case n == 0:
		return dimStyle.Render(s)
	case bad:
		return failStyle.Render(s)
	default:
		return passStyle.Render(s)
	}
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
