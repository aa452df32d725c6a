package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	countStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Summary renders the one-line end-of-run report.
func Summary(count int, path string, size int64) string {
	return fmt.Sprintf("wrote %s jobs to %s (%s)",
		countStyle.Render(humanize.Comma(int64(count))),
		pathStyle.Render(path),
		humanize.Bytes(uint64(size)),
	)
}
