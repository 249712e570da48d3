// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/database/schema"
	"github.com/podhaven/podhaven/internal/platform/dberr"
	"github.com/podhaven/podhaven/pkg/convert"
	"github.com/podhaven/podhaven/pkg/pointer"
)

// # PostgreSQL Repository

// episodeRepository implements the [EpisodeRepository] interface using pgx.
type episodeRepository struct {
	pool *pgxpool.Pool
}

// NewEpisodeRepository constructs a PostgreSQL backed episode store.
func NewEpisodeRepository(pool *pgxpool.Pool) EpisodeRepository {
	return &episodeRepository{pool: pool}
}

// selectEpisode is the shared column list for episode hydration.
func selectEpisode() string {
	t := schema.CoreEpisode
	return fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(t.Columns(), ", "), t.Table)
}

// scanEpisode hydrates an episode from a row scanner.
func scanEpisode(row pgx.Row) (*Episode, error) {
	var e Episode
	err := row.Scan(
		&e.ID,
		&e.PodcastID,
		&e.Title,
		&e.Description,
		&e.AudioURL,
		&e.FileSize,
		&e.Duration,
		&e.PublishDate,
		&e.Status,
		&e.SeasonNumber,
		&e.EpisodeNumber,
		&e.IsExplicit,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// collectEpisodes drains a result set into a slice.
func collectEpisodes(rows pgx.Rows) ([]*Episode, error) {
	defer rows.Close()

	episodes := []*Episode{}
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, episode)
	}

	return episodes, rows.Err()
}

// FindByID returns the episode with the given ID.
func (repository *episodeRepository) FindByID(context context.Context, id string) (*Episode, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectEpisode(), schema.CoreEpisode.ID)

	episode, err := scanEpisode(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	return episode, nil
}

// ListByPodcast returns a page of the show's episodes, newest first.
func (repository *episodeRepository) ListByPodcast(context context.Context, podcastID string, limit, offset int) ([]*Episode, int, error) {
	t := schema.CoreEpisode
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`, strings.Join(t.Columns(), ", "), t.Table, t.PodcastID, t.CreatedAt)

	rows, err := repository.pool.Query(context, query, podcastID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Episode")
	}
	defer rows.Close()

	var (
		episodes = []*Episode{}
		total    int
	)

	for rows.Next() {
		var e Episode
		err := rows.Scan(
			&e.ID,
			&e.PodcastID,
			&e.Title,
			&e.Description,
			&e.AudioURL,
			&e.FileSize,
			&e.Duration,
			&e.PublishDate,
			&e.Status,
			&e.SeasonNumber,
			&e.EpisodeNumber,
			&e.IsExplicit,
			&e.CreatedAt,
			&e.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Episode")
		}
		episodes = append(episodes, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Episode")
	}

	return episodes, total, nil
}

// ListAllByPodcast returns every episode of the show regardless of status.
func (repository *episodeRepository) ListAllByPodcast(context context.Context, podcastID string) ([]*Episode, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectEpisode(), schema.CoreEpisode.PodcastID)

	rows, err := repository.pool.Query(context, query, podcastID)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	episodes, err := collectEpisodes(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	return episodes, nil
}

// ListPublishedBySeason returns published episodes in ascending
// (season, episode) order.
//
// The season and episode columns are legacy TEXT and may hold values that do
// not cast to int, so the ordering is computed here with the same defensive
// parser the admission validator uses, instead of an ORDER BY cast that would
// abort the whole query on one bad row. Numberless episodes sort last by
// publish date.
func (repository *episodeRepository) ListPublishedBySeason(context context.Context, podcastID string) ([]*Episode, error) {
	episodes, err := repository.listPublished(context, podcastID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(episodes, func(i, j int) bool {
		leftSeason, leftNumber, leftOK := numberingKey(episodes[i])
		rightSeason, rightNumber, rightOK := numberingKey(episodes[j])

		if leftOK != rightOK {
			return leftOK
		}
		if !leftOK {
			return episodes[i].PublishDate.Before(episodes[j].PublishDate)
		}
		if leftSeason != rightSeason {
			return leftSeason < rightSeason
		}
		return leftNumber < rightNumber
	})

	return episodes, nil
}

// numberingKey extracts the (season, number) sort key; ok is false when the
// episode has no parsable episode number.
func numberingKey(episode *Episode) (season, number int, ok bool) {
	number, ok = convert.ToIntStrict(pointer.Val(episode.EpisodeNumber))
	if !ok {
		return 0, 0, false
	}
	season, _ = convert.ToIntStrict(pointer.Val(episode.SeasonNumber))
	return season, number, true
}

// ListPublishedByDate returns published episodes newest first.
func (repository *episodeRepository) ListPublishedByDate(context context.Context, podcastID string) ([]*Episode, error) {
	t := schema.CoreEpisode
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s = $2 ORDER BY %s DESC`,
		selectEpisode(), t.PodcastID, t.Status, t.PublishDate)

	rows, err := repository.pool.Query(context, query, podcastID, StatusPublished)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	episodes, err := collectEpisodes(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	return episodes, nil
}

// listPublished fetches published episodes without a database-side order.
func (repository *episodeRepository) listPublished(context context.Context, podcastID string) ([]*Episode, error) {
	t := schema.CoreEpisode
	query := fmt.Sprintf(`%s WHERE %s = $1 AND %s = $2`, selectEpisode(), t.PodcastID, t.Status)

	rows, err := repository.pool.Query(context, query, podcastID, StatusPublished)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	episodes, err := collectEpisodes(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	return episodes, nil
}

// Create persists a new episode.
func (repository *episodeRepository) Create(context context.Context, episode *Episode) error {
	t := schema.CoreEpisode
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, t.Table, t.ID, t.PodcastID, t.Title, t.Description, t.AudioURL,
		t.FileSize, t.Duration, t.PublishDate, t.Status, t.SeasonNumber,
		t.EpisodeNumber, t.IsExplicit)

	_, err := repository.pool.Exec(context, query,
		episode.ID,
		episode.PodcastID,
		episode.Title,
		episode.Description,
		episode.AudioURL,
		episode.FileSize,
		episode.Duration,
		episode.PublishDate,
		episode.Status,
		episode.SeasonNumber,
		episode.EpisodeNumber,
		episode.IsExplicit,
	)
	if err != nil {
		return dberr.Wrap(err, "Episode")
	}

	return nil
}

// Update persists changes to an existing episode.
func (repository *episodeRepository) Update(context context.Context, episode *Episode) error {
	t := schema.CoreEpisode
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = now()
		WHERE %s = $1
	`, t.Table, t.Title, t.Description, t.AudioURL, t.FileSize, t.Duration,
		t.PublishDate, t.Status, t.SeasonNumber, t.EpisodeNumber, t.IsExplicit,
		t.UpdatedAt, t.ID)

	tag, err := repository.pool.Exec(context, query,
		episode.ID,
		episode.Title,
		episode.Description,
		episode.AudioURL,
		episode.FileSize,
		episode.Duration,
		episode.PublishDate,
		episode.Status,
		episode.SeasonNumber,
		episode.EpisodeNumber,
		episode.IsExplicit,
	)
	if err != nil {
		return dberr.Wrap(err, "Episode")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Episode")
	}

	return nil
}

// Delete removes an episode.
func (repository *episodeRepository) Delete(context context.Context, id string) error {
	t := schema.CoreEpisode
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Episode")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Episode")
	}

	return nil
}
