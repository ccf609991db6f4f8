package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// ErrInvalidPost is returned when a post's frontmatter does not match the
// blog schema.
var ErrInvalidPost = errors.New("invalid blog post")

// Post is one entry of the blog collection.
type Post struct {
	Slug          string
	Title         string
	Description   string
	PubDate       time.Time
	HeroImage     string
	Category      catalog.Category
	TargetKeyword string
	Body          string
	HTML          template.HTML
}

func (p Post) ItemID() catalog.ID             { return catalog.ID(p.Slug) }
func (p Post) ItemCategory() catalog.Category { return p.Category }

type postFrontmatter struct {
	Title         yaml.Node `yaml:"title"`
	Description   yaml.Node `yaml:"description"`
	PubDate       yaml.Node `yaml:"pubDate"`
	HeroImage     yaml.Node `yaml:"heroImage"`
	Category      yaml.Node `yaml:"category"`
	TargetKeyword yaml.Node `yaml:"targetKeyword"`
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// DecodePost checks a document against the blog schema and renders its body.
func DecodePost(doc *Document) (Post, error) {
	var fm postFrontmatter
	if err := doc.Decode(&fm); err != nil {
		return Post{}, err
	}

	invalid := func(field, msg string) error {
		return fmt.Errorf("%w: %s: %s %s", ErrInvalidPost, doc.Path, field, msg)
	}

	p := Post{Slug: doc.Slug, Body: doc.Body}
	var err error
	if p.Title, err = requiredString(&fm.Title); err != nil {
		return Post{}, invalid("title", err.Error())
	}
	if p.Description, err = requiredString(&fm.Description); err != nil {
		return Post{}, invalid("description", err.Error())
	}
	if p.HeroImage, err = requiredString(&fm.HeroImage); err != nil {
		return Post{}, invalid("heroImage", err.Error())
	}
	if p.PubDate, err = coerceDate(&fm.PubDate); err != nil {
		return Post{}, invalid("pubDate", err.Error())
	}
	category, err := optionalString(&fm.Category)
	if err != nil {
		return Post{}, invalid("category", err.Error())
	}
	p.Category = catalog.Category(category)
	if p.TargetKeyword, err = optionalString(&fm.TargetKeyword); err != nil {
		return Post{}, invalid("targetKeyword", err.Error())
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(doc.Body), &buf); err != nil {
		return Post{}, fmt.Errorf("failed to render %s: %w", doc.Path, err)
	}
	p.HTML = template.HTML(buf.String())
	return p, nil
}

func requiredString(n *yaml.Node) (string, error) {
	if n.Kind == 0 {
		return "", errors.New("is required")
	}
	return optionalString(n)
}

func optionalString(n *yaml.Node) (string, error) {
	if n.Kind == 0 {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		return "", fmt.Errorf("must be a string, got %s", n.ShortTag())
	}
	return n.Value, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"January 2 2006",
}

// coerceDate accepts a YAML date, a date string in one of the common layouts,
// or a number of milliseconds since the epoch.
func coerceDate(n *yaml.Node) (time.Time, error) {
	if n.Kind == 0 {
		return time.Time{}, errors.New("is required")
	}
	if n.Kind != yaml.ScalarNode {
		return time.Time{}, errors.New("must be a date")
	}

	switch n.ShortTag() {
	case "!!int":
		ms, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", n.Value)
		}
		return time.UnixMilli(ms).UTC(), nil
	case "!!str", "!!timestamp":
		v := strings.TrimSpace(n.Value)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", n.Value)
}

// Blog is the loaded blog collection, newest post first.
type Blog struct {
	Posts  []Post
	bySlug map[string]int
}

// LoadBlog reads every content file in dir. A post that does not match the
// schema fails the whole load. A missing directory yields an empty blog.
func LoadBlog(dir string) (*Blog, error) {
	files, err := ContentFiles(dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Blog directory %s not found, serving an empty blog", dir)
		return NewBlog(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	posts := make([]Post, 0, len(files))
	for _, f := range files {
		doc, err := ReadDocument(f)
		if err != nil {
			return nil, err
		}
		p, err := DecodePost(doc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	log.Printf("Loaded %d blog posts from %s", len(posts), dir)
	return NewBlog(posts), nil
}

// NewBlog sorts posts newest first and indexes them by slug.
func NewBlog(posts []Post) *Blog {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PubDate.After(posts[j].PubDate)
	})
	b := &Blog{Posts: posts, bySlug: make(map[string]int, len(posts))}
	for i, p := range posts {
		b.bySlug[p.Slug] = i
	}
	return b
}

// Post returns the post with the given slug.
func (b *Blog) Post(slug string) (Post, bool) {
	i, ok := b.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return b.Posts[i], true
}

// Categories lists the categories used by posts, in order of first
// appearance. Posts without a category only show under "all".
func (b *Blog) Categories() []catalog.CategoryOption {
	var out []catalog.CategoryOption
	seen := map[catalog.Category]bool{}
	for _, p := range b.Posts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, catalog.CategoryOption{ID: p.Category, Name: string(p.Category)})
	}
	return out
}
