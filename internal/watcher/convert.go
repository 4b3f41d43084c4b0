package watcher

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samvad-hq/samvad-cms-reader/internal/domain"
	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
)

const categoryTaxonomy = "category"

// toDomain flattens a CMS article into the published payload.
func toDomain(a wordpress.Article) domain.Article {
	out := domain.Article{
		ID:          a.ID,
		Slug:        a.Slug,
		URL:         a.Link,
		Title:       a.Title.Text(),
		PublishedAt: a.Date,
		Categories:  categoryNames(a),
	}
	if a.Excerpt != nil {
		out.Description = a.Excerpt.Text()
	}

	img := wordpress.FeaturedImage(a)
	if img.URL != nil {
		out.ImageURL = *img.URL
	}
	out.ImageAlt = img.Alt

	if author := wordpress.Author(a); author != nil {
		out.AuthorName = author.Name
	}
	return out
}

// categoryNames collects names from the embedded category term list.
// Terms without a taxonomy are assumed to be categories.
func categoryNames(a wordpress.Article) []string {
	var names []string
	for _, list := range wordpress.Terms(a) {
		cats := lo.Filter(list, func(c wordpress.Category, _ int) bool {
			return c.Taxonomy == "" || c.Taxonomy == categoryTaxonomy
		})
		names = append(names, lo.Map(cats, func(c wordpress.Category, _ int) string {
			return strings.TrimSpace(c.Name)
		})...)
	}
	return names
}
