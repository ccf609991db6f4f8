// Package content loads the static collections the site is built from:
// projects, companies and blog posts.
package content

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/catalog"
)

var (
	ErrEmptyID         = errors.New("item has no id")
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrUnknownCategory = errors.New("category not declared")
)

// Projects is the projects showcase: the filter chips and the items.
type Projects struct {
	Categories []catalog.CategoryOption `yaml:"categories"`
	Items      []catalog.Project        `yaml:"projects"`
}

// Declared reports whether c is one of the declared categories.
func (p *Projects) Declared(c catalog.Category) bool {
	return slices.ContainsFunc(p.Categories, func(o catalog.CategoryOption) bool {
		return o.ID == c
	})
}

// LoadProjects reads and checks a projects file.
func LoadProjects(path string) (*Projects, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	var p Projects
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

func (p *Projects) validate() error {
	if err := uniqueIDs(p.Items); err != nil {
		return err
	}
	for _, it := range p.Items {
		if it.Category == catalog.All || !p.Declared(it.Category) {
			return fmt.Errorf("project %q: %w: %s", it.ID, ErrUnknownCategory, it.Category)
		}
		if !it.Status.Known() {
			log.Printf("Warning: project %q has unknown status %q", it.ID, it.Status)
		}
		warnLinks("project", it.ID, it.Links)
	}
	return nil
}

// LoadCompanies reads and checks a companies file.
func LoadCompanies(path string) ([]catalog.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}

	var doc struct {
		Companies []catalog.Company `yaml:"companies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := uniqueIDs(doc.Companies); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, c := range doc.Companies {
		warnLinks("company", c.ID, c.Links)
	}
	return doc.Companies, nil
}

func uniqueIDs[T catalog.Item](items []T) error {
	seen := make(map[catalog.ID]bool, len(items))
	for i, it := range items {
		id := it.ItemID()
		if id == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyID)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}

func warnLinks(kind string, id catalog.ID, links []catalog.Link) {
	for _, l := range links {
		if !l.Type.Known() {
			log.Printf("Warning: %s %q has link %q with unknown type %q", kind, id, l.Label, l.Type)
		}
	}
}
