// Copyright (c) 2026 Podhaven. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/podhaven/podhaven/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline on show titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "My True Crime Pod", "my-true-crime-pod"},
		{"accents", "Café Conversations", "cafe-conversations"},
		{"punctuation", "News & Views!", "news-views"},
		{"multi_space", "The   Daily    Brief", "the-daily-brief"},
		{"leading_trailing", "  edge case  ", "edge-case"},
		{"already_slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
