// Copyright (c) 2026 Podhaven. All rights reserved.

// Package feed implements RSS 2.0 + iTunes-namespace feed generation and the
// public feed delivery endpoints.
package feed

import "strings"

// Escape replaces XML-significant characters in a single left-to-right pass:
// < > & ' " become &lt; &gt; &amp; &apos; &quot;. No other characters are
// altered.
//
// Escaping an already-escaped string double-escapes it (the & of &amp;
// becomes &amp;amp;). Downstream feed consumers have ingested feeds with
// this behavior since launch, so it is kept as is.
func Escape(text string) string {
	if text == "" {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))

	for _, r := range text {
		switch r {
		case '<':
			builder.WriteString("&lt;")
		case '>':
			builder.WriteString("&gt;")
		case '&':
			builder.WriteString("&amp;")
		case '\'':
			builder.WriteString("&apos;")
		case '"':
			builder.WriteString("&quot;")
		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
