package watcher

import (
	"context"

	"github.com/samvad-hq/samvad-cms-reader/pkg/publishers"
	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
)

// ArticleSource is the part of the CMS client the watcher needs.
type ArticleSource interface {
	FetchArticles(ctx context.Context, q wordpress.ArticleQuery) ([]wordpress.Article, error)
	FetchCategoryBySlug(ctx context.Context, slug string) (*wordpress.Category, error)
}

// EventPublisher publishes article events downstream and reports how many
// sinks accepted the event.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Deduper remembers which articles were already published per feed.
type Deduper interface {
	Seen(feedID, key string) (bool, error)
	Mark(feedID, key string) error
}
