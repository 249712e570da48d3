// Copyright (c) 2026 Podhaven. All rights reserved.

package podcast

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/database/schema"
	"github.com/podhaven/podhaven/internal/platform/dberr"
)

// # PostgreSQL Repository

// podcastRepository implements the [PodcastRepository] interface using pgx.
type podcastRepository struct {
	pool *pgxpool.Pool
}

// NewPodcastRepository constructs a PostgreSQL backed show store.
func NewPodcastRepository(pool *pgxpool.Pool) PodcastRepository {
	return &podcastRepository{pool: pool}
}

// selectPodcast is the shared column list for show hydration.
func selectPodcast() string {
	t := schema.CorePodcast
	return fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(t.Columns(), ", "), t.Table)
}

// scanPodcast hydrates a show from a row scanner.
func scanPodcast(row pgx.Row) (*Podcast, error) {
	var p Podcast
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.PodcastName,
		&p.Title,
		&p.Description,
		&p.AuthorName,
		&p.Email,
		&p.WebsiteURL,
		&p.ArtworkURL,
		&p.Language,
		&p.IsExplicit,
		&p.Categories,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID returns the show with the given ID.
func (repository *podcastRepository) FindByID(context context.Context, id string) (*Podcast, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectPodcast(), schema.CorePodcast.ID)

	podcast, err := scanPodcast(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Podcast")
	}

	return podcast, nil
}

// FindByOwnerAndSlug returns the show addressed by (owner, podcast_name).
func (repository *podcastRepository) FindByOwnerAndSlug(context context.Context, ownerID, slug string) (*Podcast, error) {
	t := schema.CorePodcast
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s = $2`, selectPodcast(), t.OwnerID, t.PodcastName)

	podcast, err := scanPodcast(repository.pool.QueryRow(context, query, ownerID, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "Podcast")
	}

	return podcast, nil
}

// ListByOwner returns a page of the owner's shows, newest first, with the
// total count fetched in the same query via a window function.
func (repository *podcastRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Podcast, int, error) {
	t := schema.CorePodcast
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`, strings.Join(t.Columns(), ", "), t.Table, t.OwnerID, t.CreatedAt)

	rows, err := repository.pool.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Podcast")
	}
	defer rows.Close()

	var (
		podcasts = []*Podcast{}
		total    int
	)

	for rows.Next() {
		var p Podcast
		err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.PodcastName,
			&p.Title,
			&p.Description,
			&p.AuthorName,
			&p.Email,
			&p.WebsiteURL,
			&p.ArtworkURL,
			&p.Language,
			&p.IsExplicit,
			&p.Categories,
			&p.CreatedAt,
			&p.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Podcast")
		}
		podcasts = append(podcasts, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Podcast")
	}

	return podcasts, total, nil
}

// Create persists a new show.
func (repository *podcastRepository) Create(context context.Context, podcast *Podcast) error {
	t := schema.CorePodcast
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, t.Table, t.ID, t.OwnerID, t.PodcastName, t.Title, t.Description,
		t.AuthorName, t.Email, t.WebsiteURL, t.ArtworkURL, t.Language,
		t.IsExplicit, t.Categories)

	_, err := repository.pool.Exec(context, query,
		podcast.ID,
		podcast.OwnerID,
		podcast.PodcastName,
		podcast.Title,
		podcast.Description,
		podcast.AuthorName,
		podcast.Email,
		podcast.WebsiteURL,
		podcast.ArtworkURL,
		podcast.Language,
		podcast.IsExplicit,
		podcast.Categories,
	)
	if err != nil {
		return dberr.Wrap(err, "Podcast")
	}

	return nil
}

// Update persists changes to existing show metadata.
func (repository *podcastRepository) Update(context context.Context, podcast *Podcast) error {
	t := schema.CorePodcast
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = now()
		WHERE %s = $1
	`, t.Table, t.PodcastName, t.Title, t.Description, t.AuthorName, t.Email,
		t.WebsiteURL, t.ArtworkURL, t.Language, t.IsExplicit, t.Categories,
		t.UpdatedAt, t.ID)

	tag, err := repository.pool.Exec(context, query,
		podcast.ID,
		podcast.PodcastName,
		podcast.Title,
		podcast.Description,
		podcast.AuthorName,
		podcast.Email,
		podcast.WebsiteURL,
		podcast.ArtworkURL,
		podcast.Language,
		podcast.IsExplicit,
		podcast.Categories,
	)
	if err != nil {
		return dberr.Wrap(err, "Podcast")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Podcast")
	}

	return nil
}

// Delete removes a show. Episodes and analytics events follow via FK cascade.
func (repository *podcastRepository) Delete(context context.Context, id string) error {
	t := schema.CorePodcast
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Podcast")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Podcast")
	}

	return nil
}
