package display

import (
	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable size in binary units (KiB, MiB, …).
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBytesWithSign prefixes with + or - for delta display
// (e.g. "- 1.2 GiB").
func FormatBytesWithSign(bytes int64) string {
	switch {
	case bytes > 0:
		return "+ " + humanize.IBytes(uint64(bytes))
	case bytes < 0:
		return "- " + humanize.IBytes(uint64(-bytes))
	default:
		return humanize.IBytes(0)
	}
}
