package content

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Bitlatte/portfolio/internal/palette"
	"github.com/Bitlatte/portfolio/internal/stack"
)

// DateLayout is the layout of Talk.Date.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(iso string) (time.Time, error) {
	t, err := time.Parse(DateLayout, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", iso, err)
	}
	return t, nil
}

// LongDate renders t like "Tuesday, September 5th, 2023".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %s, %d", t.Weekday(), t.Month(), humanize.Ordinal(t.Day()), t.Year())
}

// FormatLongDate parses iso and renders it with LongDate.
func FormatLongDate(iso string) (string, error) {
	t, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	return LongDate(t), nil
}

// DemoLink is a numbered link to a talk demo.
type DemoLink struct {
	Label string
	URL   string
}

// DemoLinks drops empty entries. Survivors keep the 1-based position they
// had in demos, so ["", a] yields "Demo 2".
func DemoLinks(demos []string) []DemoLink {
	var out []DemoLink
	for i, d := range demos {
		if d == "" {
			continue
		}
		out = append(out, DemoLink{Label: fmt.Sprintf("Demo %d", i+1), URL: d})
	}
	return out
}

// TalkBadgeColor is the fixed background of talk tag badges.
const TalkBadgeColor = palette.Color("#F3F4F6")

// Badge is a colored tag.
type Badge struct {
	Label string
	Color palette.Color
}

// ProjectBadges resolves each identifier through the stack registry.
// Repeated identifiers are shown once. Unknown identifiers are skipped;
// site validation rejects them before anything is rendered.
func ProjectBadges(stacks []stack.Stack) []Badge {
	out := make([]Badge, 0, len(stacks))
	seen := make(map[stack.Stack]bool, len(stacks))
	for _, s := range stacks {
		if seen[s] {
			continue
		}
		seen[s] = true
		info, ok := stack.Lookup(s)
		if !ok {
			continue
		}
		out = append(out, Badge{Label: info.Label, Color: info.Color})
	}
	return out
}

// TalkBadges renders free-form talk tags with the fixed talk style.
func TalkBadges(tags []TalkTag) []Badge {
	out := make([]Badge, 0, len(tags))
	seen := make(map[TalkTag]bool, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, Badge{Label: string(tag), Color: TalkBadgeColor})
	}
	return out
}
