package wordpress

import "context"

const categoriesResource = "categories"

// FetchCategories returns up to 100 categories.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	return Get[[]Category](ctx, c, c.resource(categoriesResource)+"?per_page=100", c.reqOpts)
}

// FetchCategoryBySlug returns the category with the given slug, or nil when
// none matches.
func (c *Client) FetchCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	path := c.resource(categoriesResource) + "?slug=" + escapeComponent(slug)
	cats, err := Get[[]Category](ctx, c, path, c.reqOpts)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, nil
	}
	return &cats[0], nil
}
