package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge is how a status is presented on a card.
type Badge struct {
	Label string
	Class string
}

// Icon is how a link type is presented next to its label.
type Icon struct {
	Glyph string
	Name  string
}

var statusBadges = map[Status]Badge{
	StatusCompleted:  {Label: "Completed", Class: "bg-green-500/20 text-green-400 border-green-500/30"},
	StatusInProgress: {Label: "In Progress", Class: "bg-yellow-500/20 text-yellow-400 border-yellow-500/30"},
	StatusComingSoon: {Label: "Coming Soon", Class: "bg-blue-500/20 text-blue-400 border-blue-500/30"},
}

const unknownBadgeClass = "bg-slate-500/20 text-slate-300 border-slate-500/30"

// StatusBadge returns the badge for s. Statuses outside the enumeration get a
// neutral badge labelled with the raw value.
func StatusBadge(s Status) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	label := strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(string(s)))
	if label == "" {
		label = "Unknown"
	}
	return Badge{
		Label: cases.Title(language.English).String(label),
		Class: unknownBadgeClass,
	}
}

var linkIcons = map[LinkType]Icon{
	LinkDemo:      {Glyph: "▶", Name: "play"},
	LinkGithub:    {Glyph: "⌥", Name: "github"},
	LinkDocs:      {Glyph: "📄", Name: "file-text"},
	LinkLive:      {Glyph: "🌐", Name: "globe"},
	LinkPrimary:   {Glyph: "↗", Name: "external-link"},
	LinkSecondary: {Glyph: "↗", Name: "external-link"},
}

var fallbackIcon = Icon{Glyph: "🔗", Name: "link"}

// LinkIcon returns the icon for t, or a generic link icon.
func LinkIcon(t LinkType) Icon {
	if ic, ok := linkIcons[t]; ok {
		return ic
	}
	return fallbackIcon
}
