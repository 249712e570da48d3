// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "all five characters",
			input: `<tag attr="v" & 'q'>`,
			want:  "&lt;tag attr=&quot;v&quot; &amp; &apos;q&apos;&gt;",
		},
		{
			name:  "ampersand and quotes",
			input: `A & "B"`,
			want:  "A &amp; &quot;B&quot;",
		},
		{
			name:  "plain text untouched",
			input: "Episode 12: The Return",
			want:  "Episode 12: The Return",
		},
		{
			name:  "unicode untouched",
			input: "Café & Krümel",
			want:  "Café &amp; Krümel",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "already escaped input double-escapes",
			input: "A &amp; B",
			want:  "A &amp;amp; B",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Escape(test.input))
		})
	}
}
