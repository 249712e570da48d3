// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/podhaven/podhaven/internal/episode"
	"github.com/podhaven/podhaven/internal/podcast"
	"github.com/podhaven/podhaven/pkg/pointer"
)

// itunesNamespace is the iTunes podcast DTD namespace URI.
const itunesNamespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"

// pubDateLayout is the RFC 1123 / toUTCString form podcast directories
// expect, always rendered in GMT.
const pubDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// defaultBaseURL is the channel-link fallback when PUBLIC_BASE_URL is unset.
// It deliberately has no scheme: production feeds have carried this exact
// value in dev-generated fixtures and consumers tolerate it, so it is
// preserved rather than corrected.
const defaultBaseURL = "localhost:3000"

// # Feed Assembler

// Assembler renders a show and an ordered episode list as an RSS 2.0
// document with the iTunes namespace.
//
// The assembler does not filter, sort, or deduplicate: it renders exactly
// the list it is given, in the order given. Episode ordering is the feed
// source's responsibility.
type Assembler struct {
	baseURL string
}

// NewAssembler constructs an [Assembler]. An empty baseURL falls back to
// the historical default.
func NewAssembler(baseURL string) *Assembler {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Assembler{baseURL: baseURL}
}

// Generate renders the feed document. Free-text fields pass through
// [Escape]; URLs do not. It never fails: missing optional fields render
// their documented defaults.
func (assembler *Assembler) Generate(show *podcast.Podcast, episodes []*episode.Episode) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<rss version="2.0" xmlns:itunes="%s">`+"\n", itunesNamespace)
	b.WriteString("  <channel>\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", Escape(show.Title))
	fmt.Fprintf(&b, "    <description>%s</description>\n", Escape(show.Description))
	fmt.Fprintf(&b, "    <link>%s/podcasts/%s</link>\n", assembler.baseURL, show.ID)
	fmt.Fprintf(&b, "    <language>%s</language>\n", show.Language)
	fmt.Fprintf(&b, "    <itunes:author>%s</itunes:author>\n", Escape(show.AuthorName))
	fmt.Fprintf(&b, `    <itunes:image href="%s" />`+"\n", show.ArtworkURL)

	for _, e := range episodes {
		assembler.writeItem(&b, e)
	}

	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")

	return b.String()
}

// writeItem renders one <item> element.
func (assembler *Assembler) writeItem(b *strings.Builder, e *episode.Episode) {
	b.WriteString("    <item>\n")
	fmt.Fprintf(b, "      <title>%s</title>\n", Escape(e.Title))
	fmt.Fprintf(b, "      <description>%s</description>\n", Escape(e.Description))
	fmt.Fprintf(b, `      <enclosure url="%s" length="%d" type="audio/mpeg" />`+"\n",
		e.AudioURL, pointer.Val(e.FileSize))
	fmt.Fprintf(b, "      <guid>%s</guid>\n", e.ID)
	fmt.Fprintf(b, "      <pubDate>%s</pubDate>\n", formatPubDate(e.PublishDate))
	fmt.Fprintf(b, "      <itunes:duration>%s</itunes:duration>\n", formatDuration(e.Duration))
	b.WriteString("    </item>\n")
}

// formatPubDate renders a publish date in GMT. A zero time renders the zero
// instant rather than failing: a malformed stored date must degrade, not
// crash the feed.
func formatPubDate(t time.Time) string {
	return t.UTC().Format(pubDateLayout)
}

// formatDuration renders whole seconds as HH:MM:SS. A missing duration
// renders the documented default 00:00:00.
func formatDuration(seconds *int) string {
	total := pointer.Val(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
