package wordpress

import (
	"context"
	"strconv"
)

const (
	defaultPerPage = 10
	defaultPage    = 1
)

// FetchArticles returns one page of articles with author, media and terms
// embedded, in the order the server delivers them.
func (c *Client) FetchArticles(ctx context.Context, q ArticleQuery) ([]Article, error) {
	return Get[[]Article](ctx, c, c.articlesPath(q), c.reqOpts)
}

// FetchArticleBySlug returns the article with the given slug, or nil when
// none matches.
func (c *Client) FetchArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	var qs query
	qs.Set("_embed", "1")
	qs.Set("slug", slug)

	items, err := Get[[]Article](ctx, c, c.resource(c.articleType)+"?"+qs.Encode(), c.reqOpts)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (c *Client) articlesPath(q ArticleQuery) string {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	page := q.Page
	if page <= 0 {
		page = defaultPage
	}

	var qs query
	qs.Set("_embed", "1")
	qs.Set("per_page", strconv.Itoa(perPage))
	qs.Set("page", strconv.Itoa(page))
	if q.Category != 0 {
		qs.Set("categories", strconv.Itoa(q.Category))
	}
	if q.Search != "" {
		qs.Set("search", q.Search)
	}
	return c.resource(c.articleType) + "?" + qs.Encode()
}
