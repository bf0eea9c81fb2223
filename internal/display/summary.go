package display

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary carries the aggregate counters the end-of-run table shows.
// Plain values, so the pipeline package owns the atomics and this package
// stays presentation-only.
type Summary struct {
	Total       int
	Succeeded   int64
	Skipped     int64
	Failed      int64
	Artifacts   int64
	InputBytes  int64
	OutputBytes int64
}

// RenderSummary renders the end-of-run counters as a bordered table.
func RenderSummary(s Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run summary", ""})
	t.AppendRows([]table.Row{
		{"Files found", s.Total},
		{"Compressed", s.Succeeded},
		{"Skipped", s.Skipped},
		{"Failed", s.Failed},
		{"Artifacts written", s.Artifacts},
		{"Input bytes", FormatBytes(s.InputBytes)},
		{"Output bytes", FormatBytes(s.OutputBytes)},
	})
	return t.Render()
}
