// Package catalog holds the item records shown as cards on the portfolio and
// the widget state that decides which of them are visible or expanded.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ID identifies an item within its collection. Numeric IDs are kept as strings.
type ID string

// Category tags an item for filtering.
type Category string

// All is the pseudo-category that matches every item.
const All Category = "all"

// Status is the lifecycle tag of a project.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusComingSoon Status = "coming-soon"
)

// Known reports whether s is one of the declared statuses.
func (s Status) Known() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusComingSoon:
		return true
	}
	return false
}

// LinkType selects the icon and style of a card link.
type LinkType string

const (
	LinkDemo      LinkType = "demo"
	LinkGithub    LinkType = "github"
	LinkDocs      LinkType = "docs"
	LinkLive      LinkType = "live"
	LinkPrimary   LinkType = "primary"
	LinkSecondary LinkType = "secondary"
)

// Known reports whether t is one of the declared link types.
func (t LinkType) Known() bool {
	switch t {
	case LinkDemo, LinkGithub, LinkDocs, LinkLive, LinkPrimary, LinkSecondary:
		return true
	}
	return false
}

type Link struct {
	Type  LinkType `yaml:"type" json:"type"`
	Label string   `yaml:"label" json:"label"`
	URL   string   `yaml:"url" json:"url"`
}

type Metric struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// CategoryOption is one filter chip: a category and its display name.
type CategoryOption struct {
	ID   Category `yaml:"id" json:"id"`
	Name string   `yaml:"name" json:"name"`
}

type thumbnailKind int

const (
	thumbnailNone thumbnailKind = iota
	thumbnailGlyph
	thumbnailImage
)

// Thumbnail is either a glyph (emoji) or a path to an image. The kind is
// explicit; it is never guessed from the shape of the string.
type Thumbnail struct {
	kind  thumbnailKind
	value string
}

// Glyph returns a thumbnail rendered as text.
func Glyph(s string) Thumbnail { return Thumbnail{kind: thumbnailGlyph, value: s} }

// ImagePath returns a thumbnail rendered as an <img>.
func ImagePath(p string) Thumbnail { return Thumbnail{kind: thumbnailImage, value: p} }

func (t Thumbnail) IsImage() bool { return t.kind == thumbnailImage }
func (t Thumbnail) IsGlyph() bool { return t.kind == thumbnailGlyph }
func (t Thumbnail) Value() string { return t.value }

// UnmarshalYAML accepts {glyph: "..."} or {image: "..."}.
func (t *Thumbnail) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Glyph string `yaml:"glyph"`
		Image string `yaml:"image"`
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: thumbnail must be a mapping with glyph or image", node.Line)
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Glyph != "" && raw.Image != "":
		return fmt.Errorf("line %d: thumbnail has both glyph and image", node.Line)
	case raw.Glyph != "":
		*t = Glyph(raw.Glyph)
	case raw.Image != "":
		*t = ImagePath(raw.Image)
	default:
		return fmt.Errorf("line %d: thumbnail needs glyph or image", node.Line)
	}
	return nil
}

// Item is anything that can be laid out in a filterable card grid.
type Item interface {
	ItemID() ID
	ItemCategory() Category
}

// Project is one entry of the projects showcase.
type Project struct {
	ID          ID        `yaml:"id"`
	Category    Category  `yaml:"category"`
	Status      Status    `yaml:"status"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Thumbnail   Thumbnail `yaml:"thumbnail"`
	TechStack   []string  `yaml:"techStack"`
	Metrics     Metric    `yaml:"metrics"`
	Links       []Link    `yaml:"links"`
}

func (p Project) ItemID() ID             { return p.ID }
func (p Project) ItemCategory() Category { return p.Category }

// CompanyCategory is the single implicit category of every company.
const CompanyCategory Category = "experience"

// Company is one employer card of the content strategy section.
type Company struct {
	ID              ID        `yaml:"id"`
	Name            string    `yaml:"name"`
	Role            string    `yaml:"role"`
	Period          string    `yaml:"period"`
	Accent          string    `yaml:"accent"`
	Icon            Thumbnail `yaml:"icon"`
	MainAchievement string    `yaml:"mainAchievement"`
	Metric          string    `yaml:"metric"`
	Description     string    `yaml:"description"`
	Highlights      []string  `yaml:"highlights"`
	Links           []Link    `yaml:"links"`
}

func (c Company) ItemID() ID             { return c.ID }
func (c Company) ItemCategory() Category { return CompanyCategory }
