package seo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func TestGenerateKeywordShortBody(t *testing.T) {
	assert.Equal(t, FallbackKeyword, GenerateKeyword("too short"))
	assert.Equal(t, FallbackKeyword, GenerateKeyword(strings.Repeat("a ", 40)))
}

func TestGenerateKeywordTopThree(t *testing.T) {
	body := "Blockchain analytics with blockchain data. The analytics pipeline reads blockchain " +
		"events, then the pipeline stores analytics. Also dashboards."
	assert.Equal(t, "blockchain analytics pipeline", GenerateKeyword(body))
}

func TestGenerateKeywordTiesKeepFirstAppearance(t *testing.T) {
	body := "zebra yak xerus walrus. zebra yak xerus walrus. zebra yak xerus walrus all here"
	assert.Equal(t, "zebra yak xerus", GenerateKeyword(body))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want int
	}{
		{"empty", Metrics{}, 0},
		{"perfect", Metrics{KeywordInTitle: 1, WordCount: 1000, ReadabilityScore: 65, SentimentCompoundScore: 0.5}, 100},
		{"long and easy", Metrics{WordCount: 2000, ReadabilityScore: 80}, 22},
		{"medium", Metrics{KeywordInTitle: 1, WordCount: 600, ReadabilityScore: 40, SentimentCompoundScore: 0.1}, 55},
		{"boundaries", Metrics{WordCount: 800, ReadabilityScore: 70}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.m))
		})
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions(Metrics{WordCount: 100, ReadabilityScore: 40, KeywordCount: 0}, "go")
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "Add the keyword 'go'")
	assert.Contains(t, got[1], "(100)")
	assert.Contains(t, got[2], "Score: 40.0")
	assert.Contains(t, got[3], "0.00%")

	none := Suggestions(Metrics{KeywordInTitle: 1, WordCount: 1000, ReadabilityScore: 65, KeywordCount: 10}, "go")
	assert.Empty(t, none)

	long := Suggestions(Metrics{KeywordInTitle: 1, WordCount: 2000, ReadabilityScore: 75, KeywordCount: 20}, "go")
	require.Len(t, long, 2)
	assert.Contains(t, long[0], "Review Length")
	assert.Contains(t, long[1], "too simple")
}

func TestAnalyze(t *testing.T) {
	doc, err := content.ParseDocument("blog/go-portfolio.md", []byte(
		"---\ntitle: Building a Go Portfolio\n---\nA great Go portfolio is easy to build. Go makes it fun.\n"))
	require.NoError(t, err)

	r := Analyze(doc, "Go portfolio")
	assert.Equal(t, "go-portfolio", r.Slug)
	assert.Equal(t, "Building a Go Portfolio", r.Title)
	assert.Equal(t, 1, r.Metrics.KeywordInTitle)
	assert.Equal(t, 1, r.Metrics.KeywordCount)
	assert.Equal(t, 12, r.Metrics.WordCount)
	assert.Greater(t, r.Metrics.SentimentCompoundScore, 0.1)
	assert.Equal(t, Score(r.Metrics), r.SEOScore)
}

func TestAnalyzeWithoutTitle(t *testing.T) {
	doc, err := content.ParseDocument("x.md", []byte("plain body"))
	require.NoError(t, err)
	r := Analyze(doc, "")
	assert.Equal(t, "No Title", r.Title)
	assert.Equal(t, 0, r.Metrics.KeywordCount)
	assert.Equal(t, 0, r.Metrics.KeywordInTitle)
}

func TestSentiment(t *testing.T) {
	assert.Greater(t, sentimentCompound("This is a great and useful project"), 0.5)
	assert.Less(t, sentimentCompound("The launch was a terrible failure"), -0.5)
	assert.Less(t, sentimentCompound("it was not good"), 0.0)
	assert.Equal(t, 0.0, sentimentCompound("the table is wooden"))
}

func TestReadability(t *testing.T) {
	easy := fleschReadingEase("The cat sat. The dog ran. We had fun.")
	hard := fleschReadingEase("Institutional decentralization necessitates comprehensive interoperability considerations.")
	assert.Greater(t, easy, 90.0)
	assert.Less(t, hard, 0.0)
	assert.Equal(t, 0.0, fleschReadingEase(""))
}

func TestSyllables(t *testing.T) {
	for w, want := range map[string]int{"cat": 1, "table": 2, "make": 1, "analytics": 4, "the": 1, "rhythm": 1} {
		assert.Equal(t, want, syllables(w), w)
	}
}

func TestAnalyzeDirSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("a.md", "---\ntitle: Keyword test\ntargetKeyword: keyword\n---\nkeyword body\n")
	write("b.md", "---\ntitle: [broken\n---\nbody\n")
	write("c.md", "---\ntitle: Generated\n---\n"+strings.Repeat("portfolio analytics ", 10))
	write("notes.json", "{}")

	reports, err := AnalyzeDir(dir)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "a", reports[0].Slug)
	assert.Equal(t, "keyword", reports[0].TargetKeyword)
	assert.Equal(t, "c", reports[1].Slug)
	assert.Equal(t, "portfolio analytics", reports[1].TargetKeyword)
}

func TestAnalyzeDirMissing(t *testing.T) {
	_, err := AnalyzeDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWriteAndReadReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "seo-reports.json")

	missing, err := ReadReports(path)
	require.NoError(t, err)
	assert.Empty(t, missing)

	in := []Report{{Slug: "a", Title: "A", TargetKeyword: "k", SEOScore: 55, Suggestions: []string{"x"}}}
	require.NoError(t, WriteReports(path, in))

	out, err := ReadReports(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"seoScore": 55`)
}
