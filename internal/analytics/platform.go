// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import "strings"

// PlatformUnknown is the label for user agents no rule matches.
const PlatformUnknown = "Unknown"

// platformRules is the ordered, first-match-wins detection table. Matching is
// case-sensitive; "AppleCoreMedia" outranks everything because Apple's
// downloader UA can also carry other product tokens.
var platformRules = []struct {
	substring string
	label     string
}{
	{"AppleCoreMedia", "Apple Podcasts"},
	{"Spotify", "Spotify"},
	{"Overcast", "Overcast"},
	{"PocketCasts", "Pocket Casts"},
}

// DetectPlatform classifies a raw User-Agent header into a listening
// platform label. Empty and unrecognized strings yield [PlatformUnknown].
func DetectPlatform(userAgent string) string {
	for _, rule := range platformRules {
		if strings.Contains(userAgent, rule.substring) {
			return rule.label
		}
	}
	return PlatformUnknown
}
