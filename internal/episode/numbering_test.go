// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhaven/podhaven/pkg/pointer"
)

// numbered builds the comparison set from (season, number) pairs.
// A season of 0 means "No Season".
func numbered(pairs ...[2]int) []NumberedEpisode {
	set := make([]NumberedEpisode, 0, len(pairs))
	for i, pair := range pairs {
		episode := NumberedEpisode{ID: string(rune('a' + i)), Number: pair[1]}
		if pair[0] != 0 {
			episode.Season = pointer.To(pair[0])
		}
		set = append(set, episode)
	}
	return set
}

func TestValidateNumbering(t *testing.T) {
	tests := []struct {
		name     string
		existing []NumberedEpisode
		season   *int
		number   int
		wantKind NumberingErrorKind
	}{
		{
			name:     "first episode of an empty season must be 1",
			existing: nil,
			season:   pointer.To(1),
			number:   1,
		},
		{
			name:     "first episode cannot be 2",
			existing: nil,
			season:   pointer.To(1),
			number:   2,
			wantKind: FirstEpisodeMustBeOne,
		},
		{
			name:     "next consecutive number is accepted",
			existing: numbered([2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}),
			season:   pointer.To(1),
			number:   4,
		},
		{
			name:     "jumping past the next number is rejected",
			existing: numbered([2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}),
			season:   pointer.To(1),
			number:   6,
			wantKind: InvalidEpisodeNumber,
		},
		{
			name:     "gap fill is accepted",
			existing: numbered([2]int{1, 1}, [2]int{1, 3}),
			season:   pointer.To(1),
			number:   2,
		},
		{
			name:     "duplicate number is rejected",
			existing: numbered([2]int{1, 1}, [2]int{1, 3}),
			season:   pointer.To(1),
			number:   3,
			wantKind: DuplicateEpisodeNumber,
		},
		{
			name:     "back-fill below the minimum is accepted",
			existing: numbered([2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}),
			season:   pointer.To(1),
			number:   1,
		},
		{
			name:     "episode number below 1 is rejected",
			existing: numbered([2]int{1, 1}),
			season:   pointer.To(1),
			number:   0,
			wantKind: EpisodeNumberTooLow,
		},
		{
			name:     "skipping a season is rejected",
			existing: numbered([2]int{1, 1}, [2]int{2, 1}),
			season:   pointer.To(4),
			number:   1,
			wantKind: SeasonSkipped,
		},
		{
			name:     "next season is accepted",
			existing: numbered([2]int{1, 1}, [2]int{2, 1}),
			season:   pointer.To(3),
			number:   1,
		},
		{
			name:     "revisiting an earlier season is accepted",
			existing: numbered([2]int{1, 1}, [2]int{2, 1}),
			season:   pointer.To(1),
			number:   2,
		},
		{
			name:     "inventing an earlier unused season is rejected",
			existing: numbered([2]int{2, 1}, [2]int{3, 1}),
			season:   pointer.To(1),
			number:   1,
			wantKind: SeasonSkipped,
		},
		{
			name:     "season number below 1 is rejected",
			existing: numbered([2]int{1, 1}),
			season:   pointer.To(0),
			number:   1,
			wantKind: SeasonNumberTooLow,
		},
		{
			name:     "no-season episodes form their own group",
			existing: numbered([2]int{0, 1}, [2]int{1, 1}),
			season:   nil,
			number:   2,
		},
		{
			name:     "no-season group still enforces first-is-one",
			existing: numbered([2]int{1, 1}),
			season:   nil,
			number:   3,
			wantKind: FirstEpisodeMustBeOne,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateNumbering(test.existing, test.season, test.number, "")

			if test.wantKind == "" {
				assert.NoError(t, err)
				return
			}

			var numberingError *NumberingError
			require.ErrorAs(t, err, &numberingError)
			assert.Equal(t, test.wantKind, numberingError.Kind)
		})
	}
}

func TestValidateNumberingExcludesEditedEpisode(t *testing.T) {
	existing := []NumberedEpisode{
		{ID: "ep-1", Season: pointer.To(1), Number: 1},
		{ID: "ep-2", Season: pointer.To(1), Number: 2},
	}

	// Re-saving ep-2 with its own number must not trip the duplicate check.
	assert.NoError(t, ValidateNumbering(existing, pointer.To(1), 2, "ep-2"))

	// But taking a sibling's number still fails.
	err := ValidateNumbering(existing, pointer.To(1), 1, "ep-2")
	var numberingError *NumberingError
	require.ErrorAs(t, err, &numberingError)
	assert.Equal(t, DuplicateEpisodeNumber, numberingError.Kind)
}

func TestValidateNumberingReportsNextAndGaps(t *testing.T) {
	existing := numbered([2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3})

	err := ValidateNumbering(existing, pointer.To(1), 6, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4")

	// With a genuine gap the message also names the fillable range.
	gappy := numbered([2]int{1, 1}, [2]int{1, 4})
	err = ValidateNumbering(gappy, pointer.To(1), 6, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fill a gap between 1 and 4")
}

func TestNumberingSetSkipsMalformedValues(t *testing.T) {
	episodes := []*Episode{
		{ID: "a", SeasonNumber: pointer.To("1"), EpisodeNumber: pointer.To("1")},
		{ID: "b", SeasonNumber: pointer.To("1"), EpisodeNumber: pointer.To("S02")},
		{ID: "c", SeasonNumber: pointer.To("oops"), EpisodeNumber: pointer.To("2")},
		{ID: "d", SeasonNumber: nil, EpisodeNumber: nil},
	}

	set := NumberingSet(episodes)

	require.Len(t, set, 2)
	assert.Equal(t, "a", set[0].ID)
	require.NotNil(t, set[0].Season)
	assert.Equal(t, 1, *set[0].Season)

	// Unparsable season demotes to the "No Season" group.
	assert.Equal(t, "c", set[1].ID)
	assert.Nil(t, set[1].Season)
}
