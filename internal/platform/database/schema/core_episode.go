// Copyright (c) 2026 Podhaven. All rights reserved.

package schema

// CoreEpisodeTable represents the 'core.episode' table
type CoreEpisodeTable struct {
	Table         string
	ID            string
	PodcastID     string
	Title         string
	Description   string
	AudioURL      string
	FileSize      string
	Duration      string
	PublishDate   string
	Status        string
	SeasonNumber  string
	EpisodeNumber string
	IsExplicit    string
	CreatedAt     string
	UpdatedAt     string
}

// CoreEpisode is the schema definition for core.episode.
//
// SeasonNumber and EpisodeNumber are TEXT columns carried over from the
// legacy data model; the admission validator parses them defensively.
var CoreEpisode = CoreEpisodeTable{
	Table:         "core.episode",
	ID:            "id",
	PodcastID:     "podcastid",
	Title:         "title",
	Description:   "description",
	AudioURL:      "audiourl",
	FileSize:      "filesize",
	Duration:      "duration",
	PublishDate:   "publishdate",
	Status:        "status",
	SeasonNumber:  "seasonnumber",
	EpisodeNumber: "episodenumber",
	IsExplicit:    "isexplicit",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CoreEpisodeTable) Columns() []string {
	return []string{
		t.ID, t.PodcastID, t.Title, t.Description, t.AudioURL, t.FileSize,
		t.Duration, t.PublishDate, t.Status, t.SeasonNumber, t.EpisodeNumber,
		t.IsExplicit, t.CreatedAt, t.UpdatedAt,
	}
}
