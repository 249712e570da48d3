// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{
			name:      "apple core media",
			userAgent: "AppleCoreMedia/1.0.0.21F90 (iPhone; U; CPU OS 17_5 like Mac OS X)",
			want:      "Apple Podcasts",
		},
		{
			name:      "spotify",
			userAgent: "Spotify/8.9.42 iOS/17.5 (iPhone14,5)",
			want:      "Spotify",
		},
		{
			name:      "overcast",
			userAgent: "Overcast/3.0 (+http://overcast.fm/; iOS podcast app)",
			want:      "Overcast",
		},
		{
			name:      "pocket casts",
			userAgent: "PocketCasts/1.0 (Pocket Casts Feed Parser; +http://pocketcasts.com/)",
			want:      "Pocket Casts",
		},
		{
			name:      "first match wins",
			userAgent: "AppleCoreMedia Spotify",
			want:      "Apple Podcasts",
		},
		{
			name:      "matching is case sensitive",
			userAgent: "spotify/8.9.42",
			want:      PlatformUnknown,
		},
		{
			name:      "browser",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			want:      PlatformUnknown,
		},
		{
			name:      "empty",
			userAgent: "",
			want:      PlatformUnknown,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, DetectPlatform(test.userAgent))
		})
	}
}
