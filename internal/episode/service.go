// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/platform/validate"
	"github.com/podhaven/podhaven/internal/podcast"
	"github.com/podhaven/podhaven/pkg/convert"
	"github.com/podhaven/podhaven/pkg/uuidv7"
)

const (
	FieldSeasonNumber  = "season_number"
	FieldEpisodeNumber = "episode_number"
)

// # Service Layer

// Service orchestrates episode authoring. Every write runs through the
// numbering admission validator before touching storage.
type Service struct {
	episodeRepo EpisodeRepository
	podcastRepo podcast.PodcastRepository
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(episodeRepo EpisodeRepository, podcastRepo podcast.PodcastRepository, logger *slog.Logger) *Service {
	return &Service{
		episodeRepo: episodeRepo,
		podcastRepo: podcastRepo,
		logger:      logger,
	}
}

// validateFields applies the shared field rules for create and update.
func validateFields(e *Episode) error {
	v := &validate.Validator{}
	v.Required("title", e.Title)
	v.MaxLen("title", e.Title, 255)
	v.Required("audio_url", e.AudioURL)
	v.URL("audio_url", e.AudioURL)
	v.OneOf("status", string(e.Status), string(StatusDraft), string(StatusPublished))
	return v.Err()
}

// # Episode Operations

/*
CreateEpisode authors a new episode on a show the caller owns.

Description: Validates metadata, runs the numbering admission validator
against the show's full episode set (drafts included), and persists. A
rejected numbering proposal surfaces as a 400 with the admission message;
nothing is persisted on rejection.

Returns:
  - error: Validation, admission, ownership, or persistence errors
*/
func (service *Service) CreateEpisode(context context.Context, episode *Episode, actorID string, actorRole sec.UserRole) error {
	if _, err := service.ownedPodcast(context, episode.PodcastID, actorID, actorRole); err != nil {
		return err
	}

	if episode.ID == "" {
		episode.ID = uuidv7.New()
	}
	if episode.Status == "" {
		episode.Status = StatusDraft
	}
	if episode.PublishDate.IsZero() {
		episode.PublishDate = time.Now().UTC()
	}

	if err := validateFields(episode); err != nil {
		return err
	}

	if err := service.admitNumbering(context, episode, ""); err != nil {
		return err
	}

	if err := service.episodeRepo.Create(context, episode); err != nil {
		return err
	}

	service.logger.Info("episode_created",
		slog.String("episode_id", episode.ID),
		slog.String("podcast_id", episode.PodcastID),
		slog.String("status", string(episode.Status)),
	)

	return nil
}

/*
UpdateEpisode persists changes to an existing episode.

The admission validator runs with the episode's own ID excluded so a save
that keeps the current numbering does not trip the duplicate check.
*/
func (service *Service) UpdateEpisode(context context.Context, episode *Episode, actorID string, actorRole sec.UserRole) error {
	existing, err := service.episodeRepo.FindByID(context, episode.ID)
	if err != nil {
		return err
	}

	if _, err := service.ownedPodcast(context, existing.PodcastID, actorID, actorRole); err != nil {
		return err
	}

	// The parent show is immutable; episodes do not move between shows.
	episode.PodcastID = existing.PodcastID

	if err := validateFields(episode); err != nil {
		return err
	}

	if err := service.admitNumbering(context, episode, episode.ID); err != nil {
		return err
	}

	if err := service.episodeRepo.Update(context, episode); err != nil {
		return err
	}

	service.logger.Info("episode_updated", slog.String("episode_id", episode.ID))

	return nil
}

/*
GetEpisode retrieves a single episode on a show the caller owns.
*/
func (service *Service) GetEpisode(context context.Context, id, actorID string, actorRole sec.UserRole) (*Episode, error) {
	episode, err := service.episodeRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if _, err := service.ownedPodcast(context, episode.PodcastID, actorID, actorRole); err != nil {
		return nil, err
	}

	return episode, nil
}

/*
ListEpisodes retrieves a page of a show's episodes, any status, for the
authoring dashboard.
*/
func (service *Service) ListEpisodes(context context.Context, podcastID, actorID string, actorRole sec.UserRole, limit, offset int) ([]*Episode, int, error) {
	if _, err := service.ownedPodcast(context, podcastID, actorID, actorRole); err != nil {
		return nil, 0, err
	}

	return service.episodeRepo.ListByPodcast(context, podcastID, limit, offset)
}

/*
DeleteEpisode removes an episode from a show the caller owns.
*/
func (service *Service) DeleteEpisode(context context.Context, id, actorID string, actorRole sec.UserRole) error {
	episode, err := service.episodeRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if _, err := service.ownedPodcast(context, episode.PodcastID, actorID, actorRole); err != nil {
		return err
	}

	if err := service.episodeRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("episode_deleted", slog.String("episode_id", id))

	return nil
}

// # Numbering Admission Glue

// admitNumbering parses the proposed numbering, fetches the sibling set, and
// runs [ValidateNumbering]. An episode without a number skips admission.
func (service *Service) admitNumbering(context context.Context, episode *Episode, editingID string) error {
	if episode.EpisodeNumber == nil || *episode.EpisodeNumber == "" {
		return nil
	}

	proposedNumber, ok := convert.ToIntStrict(*episode.EpisodeNumber)
	if !ok {
		return validate.FailedField(FieldEpisodeNumber, "Must be an integer")
	}

	var proposedSeason *int
	if episode.SeasonNumber != nil && *episode.SeasonNumber != "" {
		season, ok := convert.ToIntStrict(*episode.SeasonNumber)
		if !ok {
			return validate.FailedField(FieldSeasonNumber, "Must be an integer")
		}
		proposedSeason = &season
	}

	siblings, err := service.episodeRepo.ListAllByPodcast(context, episode.PodcastID)
	if err != nil {
		return err
	}

	err = ValidateNumbering(NumberingSet(siblings), proposedSeason, proposedNumber, editingID)
	if err == nil {
		return nil
	}

	var numberingError *NumberingError
	if errors.As(err, &numberingError) {
		return validate.FailedField(numberingField(numberingError.Kind), numberingError.Message)
	}

	return err
}

// numberingField maps an admission rejection to the offending JSON field.
func numberingField(kind NumberingErrorKind) string {
	switch kind {
	case SeasonSkipped, SeasonNumberTooLow:
		return FieldSeasonNumber
	default:
		return FieldEpisodeNumber
	}
}

// ownedPodcast resolves the parent show and enforces ownership.
func (service *Service) ownedPodcast(context context.Context, podcastID, actorID string, actorRole sec.UserRole) (*podcast.Podcast, error) {
	show, err := service.podcastRepo.FindByID(context, podcastID)
	if err != nil {
		return nil, err
	}

	if show.OwnerID != actorID && !actorRole.AtLeast(sec.RoleAdmin) {
		return nil, apperr.Forbidden("You do not own this podcast")
	}

	return show, nil
}
