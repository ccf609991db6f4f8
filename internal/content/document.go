package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrFrontmatter is returned when a document's frontmatter block is malformed.
var ErrFrontmatter = errors.New("malformed frontmatter")

var (
	fence     = []byte("---")
	openFence = []byte("---\n")
	lineFence = []byte("\n---")
)

// Document is a Markdown file split into its YAML frontmatter and body.
type Document struct {
	Slug  string
	Path  string
	Body  string
	front []byte
}

// Decode unmarshals the frontmatter into v. A document without frontmatter
// decodes as an empty mapping.
func (d *Document) Decode(v any) error {
	if len(bytes.TrimSpace(d.front)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(d.front, v); err != nil {
		return fmt.Errorf("%w in %s: %v", ErrFrontmatter, d.Path, err)
	}
	return nil
}

// Meta returns a string frontmatter field, or "" when it is absent or not a
// string.
func (d *Document) Meta(key string) string {
	var m map[string]any
	if err := d.Decode(&m); err != nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// ParseDocument splits data into frontmatter and body. The slug is the file
// name without its extension.
func ParseDocument(path string, data []byte) (*Document, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	doc := &Document{
		Path: path,
		Slug: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	if !bytes.HasPrefix(data, openFence) {
		doc.Body = string(data)
		return doc, nil
	}

	rest := data[len(openFence):]
	end := -1
	if bytes.HasPrefix(rest, fence) {
		end = 0
	} else if i := bytes.Index(rest, lineFence); i >= 0 {
		end = i + 1
	}
	if end < 0 {
		return nil, fmt.Errorf("%w in %s: no closing ---", ErrFrontmatter, path)
	}

	doc.front = rest[:end]
	body := rest[end+len(fence):]
	if nl := bytes.IndexByte(body, '\n'); nl >= 0 && len(bytes.TrimSpace(body[:nl])) == 0 {
		body = body[nl+1:]
	} else if len(bytes.TrimSpace(body)) == 0 {
		body = nil
	} else {
		return nil, fmt.Errorf("%w in %s: text after closing ---", ErrFrontmatter, path)
	}
	doc.Body = string(body)

	var probe yaml.Node
	if err := yaml.Unmarshal(doc.front, &probe); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrFrontmatter, path, err)
	}
	return doc, nil
}

// ReadDocument reads and parses one content file.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseDocument(path, data)
}

// IsContentFile reports whether a file name is a Markdown content file.
// Hidden files and script or data files are skipped.
func IsContentFile(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	for _, ext := range []string{".ts", ".js", ".json"} {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	for _, ext := range []string{".md", ".mdx", ".markdown"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ContentFiles lists the content files directly inside dir, sorted by name.
func ContentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsContentFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
