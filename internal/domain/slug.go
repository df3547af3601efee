package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumerics collapsed to single dashes, plus the last six digits of
// the unix-millisecond timestamp to disambiguate identical titles.
func Slugify(title string, now time.Time) string {
	s := strings.ToLower(title)
	s = slugSeparators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	suffix := millis
	if len(millis) > 6 {
		suffix = millis[len(millis)-6:]
	}

	return s + "-" + suffix
}
