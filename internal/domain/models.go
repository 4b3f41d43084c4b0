package domain

import "strconv"

// Domain contains the flattened article payload published downstream.

// Article is a CMS article reduced to what subscribers need: plain-text
// title and excerpt, the resolved featured image and author name.
type Article struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	URL         string   `json:"url,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ImageAlt    string   `json:"image_alt,omitempty"`
	AuthorName  string   `json:"author_name,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	PublishedAt string   `json:"published_at"`
}

// Key is the dedupe key of the article.
func (a Article) Key() string {
	return "article:" + strconv.Itoa(a.ID)
}
