// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhaven/podhaven/internal/episode"
	"github.com/podhaven/podhaven/internal/podcast"
	"github.com/podhaven/podhaven/pkg/pointer"
)

func testShow() *podcast.Podcast {
	return &podcast.Podcast{
		ID:          "pod-1",
		Title:       "My Show",
		Description: "Desc",
		AuthorName:  "Jane",
		ArtworkURL:  "https://x/a.png",
		Language:    "en",
	}
}

func TestGenerateEmptyEpisodeList(t *testing.T) {
	xml := NewAssembler("https://podhaven.app").Generate(testShow(), nil)

	assert.Contains(t, xml, "<title>My Show</title>")
	assert.Contains(t, xml, "<description>Desc</description>")
	assert.NotContains(t, xml, "<item>")
}

func TestGenerateEscapesFreeTextNotURLs(t *testing.T) {
	show := testShow()
	show.Title = `A & "B"`
	show.ArtworkURL = "https://x/a.png?size=large&fmt=png"

	xml := NewAssembler("https://podhaven.app").Generate(show, nil)

	assert.Contains(t, xml, "<title>A &amp; &quot;B&quot;</title>")
	assert.Contains(t, xml, `href="https://x/a.png?size=large&fmt=png"`)
}

func TestGenerateMissingOptionalFields(t *testing.T) {
	episodes := []*episode.Episode{{
		ID:          "ep-1",
		Title:       "Ep1",
		AudioURL:    "https://x/e1.mp3",
		PublishDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	xml := NewAssembler("https://podhaven.app").Generate(testShow(), episodes)

	assert.Contains(t, xml, `length="0"`)
	assert.Contains(t, xml, "<itunes:duration>00:00:00</itunes:duration>")
}

func TestGeneratePubDateInGMT(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	episodes := []*episode.Episode{{
		ID:          "ep-1",
		Title:       "Ep1",
		AudioURL:    "https://x/e1.mp3",
		PublishDate: time.Date(2024, 1, 1, 1, 0, 0, 0, paris),
	}}

	xml := NewAssembler("https://podhaven.app").Generate(testShow(), episodes)

	assert.Contains(t, xml, "<pubDate>Mon, 01 Jan 2024 00:00:00 GMT</pubDate>")
}

func TestGenerateBaseURLFallback(t *testing.T) {
	xml := NewAssembler("").Generate(testShow(), nil)

	// The historical fallback has no scheme; it is preserved verbatim.
	assert.Contains(t, xml, "<link>localhost:3000/podcasts/pod-1</link>")
}

func TestGenerateDurationFormatting(t *testing.T) {
	episodes := []*episode.Episode{{
		ID:          "ep-1",
		Title:       "Ep1",
		AudioURL:    "https://x/e1.mp3",
		Duration:    pointer.To(3725),
		PublishDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	xml := NewAssembler("https://podhaven.app").Generate(testShow(), episodes)

	assert.Contains(t, xml, "<itunes:duration>01:02:05</itunes:duration>")
}

func TestGenerateRendersCallerOrderVerbatim(t *testing.T) {
	episodes := []*episode.Episode{
		{ID: "ep-b", Title: "Second", AudioURL: "https://x/b.mp3"},
		{ID: "ep-a", Title: "First", AudioURL: "https://x/a.mp3"},
	}

	xml := NewAssembler("https://podhaven.app").Generate(testShow(), episodes)

	assert.Less(t, strings.Index(xml, "Second"), strings.Index(xml, "First"))
}

func TestGenerateEndToEnd(t *testing.T) {
	show := &podcast.Podcast{
		ID:          "pod-1",
		Title:       "My Show",
		Description: "Desc",
		AuthorName:  "Jane",
		ArtworkURL:  "https://x/a.png",
		Language:    "en",
	}
	published := []*episode.Episode{{
		ID:          "ep-1",
		Title:       "Ep1",
		Description: "D1",
		AudioURL:    "https://x/e1.mp3",
		FileSize:    pointer.To(int64(1000)),
		Duration:    pointer.To(60),
		PublishDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      episode.StatusPublished,
	}}

	// The draft episode never reaches the assembler: the feed source fetches
	// published episodes only.
	xml := NewAssembler("https://podhaven.app").Generate(show, published)

	require.Equal(t, 1, strings.Count(xml, "<item>"))
	assert.Contains(t, xml, "<title>Ep1</title>")
	assert.Contains(t, xml, `<enclosure url="https://x/e1.mp3" length="1000" type="audio/mpeg" />`)
	assert.Contains(t, xml, "<guid>ep-1</guid>")
	assert.Contains(t, xml, "<itunes:duration>00:01:00</itunes:duration>")
	assert.NotContains(t, xml, "Secret Draft")
}
