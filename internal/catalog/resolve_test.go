package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatusBadgeKnown(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusInProgress, StatusComingSoon} {
		b := StatusBadge(s)
		assert.NotEmpty(t, b.Label, s)
		assert.NotEqual(t, unknownBadgeClass, b.Class, s)
	}
	assert.Equal(t, "In Progress", StatusBadge(StatusInProgress).Label)
}

func TestStatusBadgeFallback(t *testing.T) {
	b := StatusBadge("on-hold")
	assert.Equal(t, "On Hold", b.Label)
	assert.Equal(t, unknownBadgeClass, b.Class)

	assert.Equal(t, "Unknown", StatusBadge("").Label)
}

func TestLinkIcon(t *testing.T) {
	for _, lt := range []LinkType{LinkDemo, LinkGithub, LinkDocs, LinkLive, LinkPrimary, LinkSecondary} {
		ic := LinkIcon(lt)
		assert.NotEmpty(t, ic.Glyph, lt)
		assert.NotEqual(t, fallbackIcon, ic, lt)
	}
	assert.Equal(t, fallbackIcon, LinkIcon("video"))
}

func TestThumbnailYAML(t *testing.T) {
	var got struct {
		A Thumbnail `yaml:"a"`
		B Thumbnail `yaml:"b"`
	}
	err := yaml.Unmarshal([]byte("a: {glyph: \"🔄\"}\nb: {image: /images/x.png}\n"), &got)
	require.NoError(t, err)

	assert.True(t, got.A.IsGlyph())
	assert.Equal(t, "🔄", got.A.Value())
	assert.True(t, got.B.IsImage())
	assert.Equal(t, "/images/x.png", got.B.Value())
}

func TestThumbnailYAMLRejectsAmbiguous(t *testing.T) {
	for name, doc := range map[string]string{
		"bare string": "a: \"🔄\"\n",
		"both":        "a: {glyph: x, image: y}\n",
		"neither":     "a: {}\n",
	} {
		t.Run(name, func(t *testing.T) {
			var got struct {
				A Thumbnail `yaml:"a"`
			}
			assert.Error(t, yaml.Unmarshal([]byte(doc), &got))
		})
	}
}
