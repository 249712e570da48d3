// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import (
	"fmt"

	"github.com/podhaven/podhaven/pkg/convert"
)

// # Numbering Admission

// NumberingErrorKind classifies why a proposed (season, episode) pair was
// rejected.
type NumberingErrorKind string

const (
	DuplicateEpisodeNumber NumberingErrorKind = "DUPLICATE_EPISODE_NUMBER"
	InvalidEpisodeNumber   NumberingErrorKind = "INVALID_EPISODE_NUMBER"
	FirstEpisodeMustBeOne  NumberingErrorKind = "FIRST_EPISODE_MUST_BE_ONE"
	EpisodeNumberTooLow    NumberingErrorKind = "EPISODE_NUMBER_TOO_LOW"
	SeasonSkipped          NumberingErrorKind = "SEASON_SKIPPED"
	SeasonNumberTooLow     NumberingErrorKind = "SEASON_NUMBER_TOO_LOW"
)

// NumberingError is the admission validator's rejection. It is a gate, not a
// mutation: on rejection nothing has been persisted.
type NumberingError struct {
	Kind    NumberingErrorKind
	Message string
}

func (e *NumberingError) Error() string { return e.Message }

// NumberedEpisode is the minimal numbering view of an existing episode.
//
// A nil Season places the episode in the "No Season" group, which follows the
// same episode-number rules as a real season but never participates in season
// admission.
type NumberedEpisode struct {
	ID     string
	Season *int
	Number int
}

/*
ValidateNumbering decides whether a proposed (season, episode) pair may join
the podcast's existing numbering set.

Rules, within the proposed season's scope:
  - the number must not already be taken,
  - it must extend the maximum by exactly one, fill a genuine gap, or
    back-fill below the current minimum,
  - the very first episode of a season must be number 1.

Across seasons, a new season may only be max(existing)+1; an earlier season
number is accepted only if that season already exists (revisiting to fill
episode gaps), never as a brand-new out-of-sequence season.

editingID excludes the episode currently being edited from the comparison set
so a no-op renumber does not trip the duplicate check. Pass "" on create.

The function is pure and order-independent over the input slice.
*/
func ValidateNumbering(existing []NumberedEpisode, proposedSeason *int, proposedNumber int, editingID string) error {
	var (
		inSeason    []int
		seasonsUsed = map[int]bool{}
	)
	for _, episode := range existing {
		if editingID != "" && episode.ID == editingID {
			continue
		}
		if episode.Season != nil {
			seasonsUsed[*episode.Season] = true
		}
		if sameSeason(episode.Season, proposedSeason) {
			inSeason = append(inSeason, episode.Number)
		}
	}

	if err := validateEpisodeNumber(inSeason, proposedNumber); err != nil {
		return err
	}

	if proposedSeason != nil {
		return validateSeason(seasonsUsed, *proposedSeason)
	}

	return nil
}

// sameSeason compares two optional season numbers; two nils are the same
// ("No Season") group.
func sameSeason(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// validateSeason enforces the cross-season ordering rules.
func validateSeason(seasonsUsed map[int]bool, proposed int) error {
	if proposed < 1 {
		return &NumberingError{
			Kind:    SeasonNumberTooLow,
			Message: "Season number must be 1 or greater",
		}
	}

	maxSeason := 0
	for season := range seasonsUsed {
		if season > maxSeason {
			maxSeason = season
		}
	}

	if proposed > maxSeason+1 {
		return &NumberingError{
			Kind:    SeasonSkipped,
			Message: fmt.Sprintf("Cannot skip to season %d: the next season is %d", proposed, maxSeason+1),
		}
	}

	// Revisiting an existing earlier season is fine; inventing a new one
	// below the maximum is not.
	if proposed < maxSeason && !seasonsUsed[proposed] {
		return &NumberingError{
			Kind:    SeasonSkipped,
			Message: fmt.Sprintf("Season %d was never created and cannot be added below season %d", proposed, maxSeason),
		}
	}

	return nil
}

// validateEpisodeNumber enforces the within-season density rules.
func validateEpisodeNumber(inSeason []int, proposed int) error {
	for _, number := range inSeason {
		if number == proposed {
			return &NumberingError{
				Kind:    DuplicateEpisodeNumber,
				Message: fmt.Sprintf("Episode %d already exists in this season", proposed),
			}
		}
	}

	if proposed < 1 {
		return &NumberingError{
			Kind:    EpisodeNumberTooLow,
			Message: "Episode number must be 1 or greater",
		}
	}

	if len(inSeason) == 0 {
		if proposed != 1 {
			return &NumberingError{
				Kind:    FirstEpisodeMustBeOne,
				Message: "The first episode of a season must be episode 1",
			}
		}
		return nil
	}

	minNumber, maxNumber := inSeason[0], inSeason[0]
	for _, number := range inSeason {
		if number < minNumber {
			minNumber = number
		}
		if number > maxNumber {
			maxNumber = number
		}
	}

	// Next consecutive, gap fill between min and max, or back-fill below min.
	if proposed == maxNumber+1 || proposed < minNumber || (proposed > minNumber && proposed < maxNumber) {
		return nil
	}

	message := fmt.Sprintf("Invalid episode number %d: the next episode is %d", proposed, maxNumber+1)
	if maxNumber-minNumber+1 > len(inSeason) {
		message += fmt.Sprintf(", or fill a gap between %d and %d", minNumber, maxNumber)
	}

	return &NumberingError{
		Kind:    InvalidEpisodeNumber,
		Message: message,
	}
}

// NumberingSet extracts the numbering view from stored episodes.
//
// Episode numbers that fail strict integer parsing exclude the episode from
// admission entirely; an unparsable season demotes the episode to the
// "No Season" group. Malformed legacy values never abort validation.
func NumberingSet(episodes []*Episode) []NumberedEpisode {
	set := make([]NumberedEpisode, 0, len(episodes))

	for _, episode := range episodes {
		if episode.EpisodeNumber == nil {
			continue
		}
		number, ok := convert.ToIntStrict(*episode.EpisodeNumber)
		if !ok {
			continue
		}

		numbered := NumberedEpisode{ID: episode.ID, Number: number}
		if episode.SeasonNumber != nil {
			if season, ok := convert.ToIntStrict(*episode.SeasonNumber); ok {
				numbered.Season = &season
			}
		}

		set = append(set, numbered)
	}

	return set
}
