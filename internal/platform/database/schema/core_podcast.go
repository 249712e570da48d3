// Copyright (c) 2026 Podhaven. All rights reserved.

package schema

// CorePodcastTable represents the 'core.podcast' table
type CorePodcastTable struct {
	Table       string
	ID          string
	OwnerID     string
	PodcastName string
	Title       string
	Description string
	AuthorName  string
	Email       string
	WebsiteURL  string
	ArtworkURL  string
	Language    string
	IsExplicit  string
	Categories  string
	CreatedAt   string
	UpdatedAt   string
}

// CorePodcast is the schema definition for core.podcast
var CorePodcast = CorePodcastTable{
	Table:       "core.podcast",
	ID:          "id",
	OwnerID:     "ownerid",
	PodcastName: "podcastname",
	Title:       "title",
	Description: "description",
	AuthorName:  "authorname",
	Email:       "email",
	WebsiteURL:  "websiteurl",
	ArtworkURL:  "artworkurl",
	Language:    "language",
	IsExplicit:  "isexplicit",
	Categories:  "categories",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CorePodcastTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.PodcastName, t.Title, t.Description, t.AuthorName,
		t.Email, t.WebsiteURL, t.ArtworkURL, t.Language, t.IsExplicit,
		t.Categories, t.CreatedAt, t.UpdatedAt,
	}
}
