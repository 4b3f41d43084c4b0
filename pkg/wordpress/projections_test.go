package wordpress

import (
	"encoding/json"
	"testing"
)

func decodeArticle(t *testing.T, raw string) Article {
	t.Helper()
	var a Article
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("decode article: %v", err)
	}
	return a
}

func TestFeaturedImageWithoutEmbedded(t *testing.T) {
	a := decodeArticle(t, `{"id":1,"title":{"rendered":"Plain"}}`)

	img := FeaturedImage(a)
	if img.URL != nil {
		t.Fatalf("expected nil url, got %q", *img.URL)
	}
	if img.Alt != "Plain" {
		t.Fatalf("alt = %q", img.Alt)
	}
	if Author(a) != nil {
		t.Fatalf("expected nil author")
	}
	if Terms(a) != nil {
		t.Fatalf("expected nil terms")
	}
}

func TestFeaturedImagePrefersMediumSize(t *testing.T) {
	a := decodeArticle(t, `{
		"id": 1,
		"title": {"rendered": "Title"},
		"_embedded": {
			"wp:featuredmedia": [{
				"source_url": "https://cdn.example.com/full.jpg",
				"alt_text": "A cat",
				"media_details": {"sizes": {
					"thumbnail": {"source_url": "https://cdn.example.com/t.jpg", "width": 150, "height": 150},
					"medium": {"source_url": "https://cdn.example.com/m.jpg", "width": 300, "height": 200}
				}}
			}]
		}
	}`)

	img := FeaturedImage(a)
	if img.URL == nil || *img.URL != "https://cdn.example.com/m.jpg" {
		t.Fatalf("unexpected url %v", img.URL)
	}
	if img.Alt != "A cat" {
		t.Fatalf("alt = %q", img.Alt)
	}
}

func TestFeaturedImageFallsBackToSourceURL(t *testing.T) {
	a := decodeArticle(t, `{
		"title": {"rendered": "Title"},
		"_embedded": {"wp:featuredmedia": [{"source_url": "https://cdn.example.com/full.jpg", "media_details": {}}]}
	}`)

	img := FeaturedImage(a)
	if img.URL == nil || *img.URL != "https://cdn.example.com/full.jpg" {
		t.Fatalf("unexpected url %v", img.URL)
	}
	if img.Alt != "Title" {
		t.Fatalf("alt should fall back to title, got %q", img.Alt)
	}
}

func TestFeaturedImageSkipsMediumWithoutURL(t *testing.T) {
	a := decodeArticle(t, `{
		"title": {"rendered": "Title"},
		"_embedded": {"wp:featuredmedia": [{
			"source_url": "https://cdn.example.com/full.jpg",
			"media_details": {"sizes": {"medium": {"width": 300, "height": 200}}}
		}]}
	}`)

	img := FeaturedImage(a)
	if img.URL == nil || *img.URL != "https://cdn.example.com/full.jpg" {
		t.Fatalf("expected source url fallback, got %v", img.URL)
	}
}

func TestFeaturedImageKeepsEmptyAltText(t *testing.T) {
	a := decodeArticle(t, `{
		"title": {"rendered": "Title"},
		"_embedded": {"wp:featuredmedia": [{"alt_text": ""}]}
	}`)

	img := FeaturedImage(a)
	if img.URL != nil {
		t.Fatalf("expected nil url")
	}
	if img.Alt != "" {
		t.Fatalf("present empty alt text must win over title, got %q", img.Alt)
	}
}

func TestProjectionsTolerateEmptyEmbedded(t *testing.T) {
	a := decodeArticle(t, `{"title":{"rendered":"T"},"_embedded":{"author":[],"wp:featuredmedia":[]}}`)

	if img := FeaturedImage(a); img.URL != nil || img.Alt != "T" {
		t.Fatalf("unexpected image %+v", img)
	}
	if Author(a) != nil {
		t.Fatalf("expected nil author")
	}
}

func TestAuthorReturnsFirstEmbedded(t *testing.T) {
	a := decodeArticle(t, `{
		"author": 4,
		"_embedded": {"author": [{"id": 4, "name": "Asha", "slug": "asha"}, {"id": 5, "name": "Other", "slug": "other"}]}
	}`)

	u := Author(a)
	if u == nil || u.ID != 4 || u.Name != "Asha" {
		t.Fatalf("unexpected author %+v", u)
	}
}

func TestTermsKeepOneListPerTaxonomy(t *testing.T) {
	a := decodeArticle(t, `{
		"_embedded": {"wp:term": [
			[{"id": 1, "name": "News", "slug": "news", "taxonomy": "category"}, {"id": 2, "name": "World", "slug": "world", "taxonomy": "category"}],
			[{"id": 9, "name": "Elections", "slug": "elections", "taxonomy": "post_tag"}]
		]}
	}`)

	terms := Terms(a)
	if len(terms) != 2 {
		t.Fatalf("expected 2 taxonomy lists, got %d", len(terms))
	}
	if len(terms[0]) != 2 || len(terms[1]) != 1 {
		t.Fatalf("unexpected term lists %+v", terms)
	}
	if terms[1][0].Taxonomy != "post_tag" {
		t.Fatalf("taxonomy = %q", terms[1][0].Taxonomy)
	}
}

func TestRenderedText(t *testing.T) {
	r := Rendered{Rendered: "<p>Hello &amp; <strong>welcome</strong>\n to   the site</p>"}
	if got := r.Text(); got != "Hello & welcome to the site" {
		t.Fatalf("Text() = %q", got)
	}
	if got := (Rendered{}).Text(); got != "" {
		t.Fatalf("empty Text() = %q", got)
	}
	c := Content{Rendered: "<div><p>One</p><p>Two</p></div>"}
	if got := c.Text(); got != "One Two" {
		t.Fatalf("Content.Text() = %q", got)
	}
}
