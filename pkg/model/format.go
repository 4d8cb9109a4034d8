package model

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatFileSize renders a byte count for display (e.g. "2.0 MB").
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(bytes))
}

// FormatRelativeTime renders a timestamp relative to now (e.g. "4 hours ago").
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}
