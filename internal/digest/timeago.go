package digest

import (
	"fmt"
	"time"

	"news-digest/internal/domain/entity"
)

// TimeAgo renders a publish timestamp as a coarse human-readable age
// relative to now. Empty or unparsable timestamps render as "Unknown time";
// anything under a minute old is "Just now".
func TimeAgo(publishedAt string, now time.Time) string {
	if publishedAt == "" {
		return "Unknown time"
	}

	published := entity.ParsePublishedAt(publishedAt)
	if published.IsZero() {
		return "Unknown time"
	}

	diff := now.Sub(published)

	switch {
	case diff >= 24*time.Hour:
		days := int(diff.Hours()) / 24
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case diff >= time.Minute:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	default:
		return "Just now"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
