package dashboard

import (
	"fmt"
	"time"
)

// UnknownRelativeTime is returned for a missing timestamp.
const UnknownRelativeTime = "unknown"

// FormatRelative renders the time elapsed from t to now as a coarse bucket:
// "just now", "N minutes ago", "N hours ago", "N days ago" or "N months ago"
// where a month is 30 days. Future timestamps read as "just now".
func FormatRelative(t *time.Time, now time.Time) string {
	if t == nil {
		return UnknownRelativeTime
	}
	elapsed := now.Sub(*t)
	minutes := int64(elapsed / time.Minute)
	hours := int64(elapsed / time.Hour)
	days := int64(elapsed / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
