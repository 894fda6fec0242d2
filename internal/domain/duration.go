package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatDuration renders the elapsed time between start and end as
// "{d}d {h}h {m}m {s}s", decomposing the difference into whole days,
// hours, minutes and seconds. A negative difference is treated as zero.
func FormatDuration(start, end time.Time) string {
	diff := end.Sub(start)
	if diff < 0 {
		diff = 0
	}
	days := diff / day
	diff -= days * day
	hours := diff / time.Hour
	diff -= hours * time.Hour
	minutes := diff / time.Minute
	diff -= minutes * time.Minute
	seconds := diff / time.Second

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// RecencyLabel buckets the time since last into "Today", "Yesterday" or
// "{n} days ago", with n the whole number of elapsed days.
func RecencyLabel(last, now time.Time) string {
	diff := now.Sub(last)
	if diff < 0 {
		diff = 0
	}
	days := int(diff / day)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
