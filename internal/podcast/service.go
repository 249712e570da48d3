// Copyright (c) 2026 Podhaven. All rights reserved.

package podcast

import (
	"context"
	"log/slog"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/platform/validate"
	"github.com/podhaven/podhaven/pkg/slug"
	"github.com/podhaven/podhaven/pkg/uuidv7"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPodcastName = "podcast_name"
	FieldAuthorName  = "author_name"
	FieldEmail       = "email"
	FieldLanguage    = "language"
)

// # Service Layer

// Service orchestrates the business logic for shows.
type Service struct {
	podcastRepo PodcastRepository
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(podcastRepo PodcastRepository, logger *slog.Logger) *Service {
	return &Service{
		podcastRepo: podcastRepo,
		logger:      logger,
	}
}

// validateMetadata applies the shared field rules for create and update.
func validateMetadata(p *Podcast) error {
	v := &validate.Validator{}
	v.Required(FieldTitle, p.Title)
	v.MaxLen(FieldTitle, p.Title, 255)
	v.Required(FieldDescription, p.Description)
	v.Required(FieldAuthorName, p.AuthorName)
	v.Email(FieldEmail, p.Email)
	v.Slug(FieldPodcastName, p.PodcastName)
	v.URL("website_url", p.WebsiteURL)
	v.URL("artwork_url", p.ArtworkURL)
	v.Custom(FieldLanguage, len(p.Language) != 2, "Must be a two-letter language code")
	return v.Err()
}

// # Show Operations

/*
CreatePodcast initialises a new show.

Description: Generates the URL slug from the title when the caller did not
choose one, validates all metadata, and persists the record. Slug collisions
within the same owner surface as apperr.Conflict from the unique index.

Parameters:
  - context: context.Context
  - podcast: *Podcast (ID and timestamps are assigned here)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreatePodcast(context context.Context, podcast *Podcast) error {

	// Identity & Mandatory field generation
	if podcast.ID == "" {
		podcast.ID = uuidv7.New()
	}
	if podcast.PodcastName == "" {
		podcast.PodcastName = slug.From(podcast.Title)
	}
	if podcast.Language == "" {
		podcast.Language = "en"
	}

	if err := validateMetadata(podcast); err != nil {
		return err
	}

	if err := service.podcastRepo.Create(context, podcast); err != nil {
		return err
	}

	service.logger.Info("podcast_created",
		slog.String("podcast_id", podcast.ID),
		slog.String("owner_id", podcast.OwnerID),
		slog.String("podcast_name", podcast.PodcastName),
	)

	return nil
}

/*
GetPodcast retrieves a single show by its ID.
*/
func (service *Service) GetPodcast(context context.Context, id string) (*Podcast, error) {
	return service.podcastRepo.FindByID(context, id)
}

/*
ListPodcasts retrieves a page of the owner's shows.
*/
func (service *Service) ListPodcasts(context context.Context, ownerID string, limit, offset int) ([]*Podcast, int, error) {
	return service.podcastRepo.ListByOwner(context, ownerID, limit, offset)
}

/*
UpdatePodcast persists changes to show metadata.

Description: Only the owner (or an admin) may mutate a show. The slug may be
changed, which changes the public feed URL; directory resubmission is the
host's responsibility and is surfaced in the dashboard UI, not here.
*/
func (service *Service) UpdatePodcast(context context.Context, podcast *Podcast, actorID string, actorRole sec.UserRole) error {
	existing, err := service.podcastRepo.FindByID(context, podcast.ID)
	if err != nil {
		return err
	}

	if err := requireOwnership(existing, actorID, actorRole); err != nil {
		return err
	}

	// Ownership is immutable.
	podcast.OwnerID = existing.OwnerID

	if err := validateMetadata(podcast); err != nil {
		return err
	}

	if err := service.podcastRepo.Update(context, podcast); err != nil {
		return err
	}

	service.logger.Info("podcast_updated", slog.String("podcast_id", podcast.ID))

	return nil
}

/*
DeletePodcast removes a show and all of its episodes.
*/
func (service *Service) DeletePodcast(context context.Context, id, actorID string, actorRole sec.UserRole) error {
	existing, err := service.podcastRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := requireOwnership(existing, actorID, actorRole); err != nil {
		return err
	}

	if err := service.podcastRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("podcast_deleted", slog.String("podcast_id", id))

	return nil
}

// requireOwnership rejects mutation by anyone but the owner or an admin.
func requireOwnership(podcast *Podcast, actorID string, actorRole sec.UserRole) error {
	if podcast.OwnerID == actorID || actorRole.AtLeast(sec.RoleAdmin) {
		return nil
	}
	return apperr.Forbidden("You do not own this podcast")
}
