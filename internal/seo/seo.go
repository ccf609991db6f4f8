// Package seo scores blog posts for search friendliness and suggests fixes.
package seo

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

// FallbackKeyword is used when a post is too short to derive a keyword from.
const FallbackKeyword = "marketing project machine learning"

// Metrics are the raw measurements of one post.
type Metrics struct {
	WordCount              int     `json:"wordCount"`
	ReadabilityScore       float64 `json:"readabilityScore"`
	KeywordInTitle         int     `json:"keywordInTitle"`
	KeywordCount           int     `json:"keywordCount"`
	SentimentCompoundScore float64 `json:"sentimentCompoundScore"`
}

// Report is the analysis of one post.
type Report struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	TargetKeyword string   `json:"targetKeyword"`
	Metrics       Metrics  `json:"metrics"`
	SEOScore      int      `json:"seoScore"`
	Suggestions   []string `json:"suggestions"`
}

// GenerateKeyword derives a keyword from the three most frequent non stop
// words of body. Ties keep the order of first appearance.
func GenerateKeyword(body string) string {
	if len(body) < 50 {
		return FallbackKeyword
	}

	counts := map[string]int{}
	var order []string
	for _, w := range words(body) {
		if stopWords[w] || isShortWord(w) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	if len(order) == 0 {
		return FallbackKeyword
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return strings.Join(order[:min(3, len(order))], " ")
}

// Analyze measures doc against keyword and scores it.
func Analyze(doc *content.Document, keyword string) Report {
	title := doc.Meta("title")
	if title == "" {
		title = "No Title"
	}
	body := doc.Body
	kw := strings.ToLower(keyword)

	m := Metrics{
		WordCount:              lexiconCount(body),
		ReadabilityScore:       fleschReadingEase(body),
		SentimentCompoundScore: sentimentCompound(body),
	}
	if kw != "" {
		m.KeywordCount = strings.Count(strings.ToLower(body), kw)
		if strings.Contains(strings.ToLower(title), kw) {
			m.KeywordInTitle = 1
		}
	}

	return Report{
		Slug:          doc.Slug,
		Title:         title,
		TargetKeyword: keyword,
		Metrics:       m,
		SEOScore:      Score(m),
		Suggestions:   Suggestions(m, keyword),
	}
}

// Score weighs the metrics into a 0..100 score.
func Score(m Metrics) int {
	const (
		keywordInTitle = 40.0
		wordCount      = 30.0
		readability    = 15.0
		sentiment      = 15.0
	)

	var score float64
	if m.KeywordInTitle == 1 {
		score += keywordInTitle
	}

	switch {
	case m.WordCount >= 800 && m.WordCount <= 1500:
		score += wordCount
	case m.WordCount >= 500 && m.WordCount < 800, m.WordCount > 1500:
		score += wordCount / 2
	}

	switch {
	case m.ReadabilityScore >= 60 && m.ReadabilityScore <= 70:
		score += readability
	case m.ReadabilityScore > 70:
		score += readability / 2
	}

	if m.SentimentCompoundScore > 0.1 {
		score += sentiment
	}
	return int(min(score, 100))
}

// Suggestions lists actionable fixes, most important first.
func Suggestions(m Metrics, keyword string) []string {
	out := []string{}

	if m.KeywordInTitle == 0 {
		out = append(out, fmt.Sprintf("🔴 High Priority: Add the keyword '%s' to the article title.", keyword))
	}

	switch {
	case m.WordCount < 800:
		out = append(out, fmt.Sprintf("🟡 Content Depth: Expand the article. Current word count is low (%d). Target: 800+ words.", m.WordCount))
	case m.WordCount > 1500:
		out = append(out, fmt.Sprintf("🟢 Review Length: Consider breaking the article into multiple posts. Current length is high (%d).", m.WordCount))
	}

	switch {
	case m.ReadabilityScore < 60:
		out = append(out, fmt.Sprintf("🟡 Readability: Content may be too difficult to read (Score: %.1f). Use shorter sentences and simpler vocabulary.", m.ReadabilityScore))
	case m.ReadabilityScore > 70:
		out = append(out, fmt.Sprintf("🟢 Readability: Content may be too simple (Score: %.1f). Ensure technical depth is sufficient.", m.ReadabilityScore))
	}

	var density float64
	if m.WordCount > 0 {
		density = float64(m.KeywordCount) / float64(m.WordCount) * 100
	}
	if density < 0.5 {
		out = append(out, fmt.Sprintf("🟡 Keyword Density: Increase usage of '%s'. Current density: %.2f%%.", keyword, density))
	}
	return out
}

// AnalyzeDir analyzes every content file in dir. Files that cannot be read or
// whose frontmatter is malformed are logged and skipped.
func AnalyzeDir(dir string) ([]Report, error) {
	files, err := content.ContentFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list content in %s: %w", dir, err)
	}

	reports := make([]Report, 0, len(files))
	for _, f := range files {
		doc, err := content.ReadDocument(f)
		if err != nil {
			log.Printf("Skipping %s: %v", f, err)
			continue
		}
		keyword := doc.Meta("targetKeyword")
		if keyword == "" {
			keyword = GenerateKeyword(doc.Body)
		}
		reports = append(reports, Analyze(doc, keyword))
	}
	return reports, nil
}
