// Package wordpress is a typed read-only client for the WordPress REST API.
package wordpress

// Rendered is a server-rendered HTML fragment.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Content is the rendered article body plus its password-protection flag.
type Content struct {
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected"`
}

// User is a CMS author record.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Category is a taxonomy term. Taxonomy is only populated on embedded terms.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy,omitempty"`
}

// MediaSize is one named rendition of an attachment.
type MediaSize struct {
	SourceURL string `json:"source_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// MediaDetails holds the size variants of an attachment keyed by size name.
type MediaDetails struct {
	Sizes map[string]MediaSize `json:"sizes,omitempty"`
}

// Media is an embedded featured-media record. Every field is optional.
type Media struct {
	SourceURL    *string       `json:"source_url,omitempty"`
	AltText      *string       `json:"alt_text,omitempty"`
	MediaDetails *MediaDetails `json:"media_details,omitempty"`
}

// Embedded is the bundle the server inlines when a request sets _embed.
// Terms holds one list per taxonomy and must not be flattened.
type Embedded struct {
	Author        []User       `json:"author,omitempty"`
	FeaturedMedia []Media      `json:"wp:featuredmedia,omitempty"`
	Terms         [][]Category `json:"wp:term,omitempty"`
}

// Article is a record of the article post type.
type Article struct {
	ID         int       `json:"id"`
	Slug       string    `json:"slug"`
	Date       string    `json:"date"`
	Link       string    `json:"link,omitempty"`
	Title      Rendered  `json:"title"`
	Content    Content   `json:"content"`
	Excerpt    *Rendered `json:"excerpt,omitempty"`
	Author     int       `json:"author"`
	Categories []int     `json:"categories,omitempty"`
	Embedded   *Embedded `json:"_embedded,omitempty"`
}

// ArticleQuery filters a page of articles. Zero values fall back to defaults
// (PerPage 10, Page 1) or are omitted from the query (Category, Search).
type ArticleQuery struct {
	PerPage  int
	Page     int
	Category int
	Search   string
}
