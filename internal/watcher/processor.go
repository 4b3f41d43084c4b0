package watcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/samvad-hq/samvad-cms-reader/internal/domain"
	"github.com/samvad-hq/samvad-cms-reader/internal/logger"
	"github.com/samvad-hq/samvad-cms-reader/pkg/feeds"
	"github.com/samvad-hq/samvad-cms-reader/pkg/publishers"
	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
)

// FeedProcessor polls one feed: fetch, flatten, drop seen, publish, mark.
type FeedProcessor struct {
	source    ArticleSource
	publisher EventPublisher
	store     Deduper
	log       logger.Logger
	origin    string
}

// NewFeedProcessor wires a processor. origin is stamped on every event as its source.
func NewFeedProcessor(source ArticleSource, pub EventPublisher, store Deduper, log logger.Logger, origin string) *FeedProcessor {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &FeedProcessor{
		source:    source,
		publisher: pub,
		store:     store,
		log:       log,
		origin:    origin,
	}
}

// Process runs one poll of feed.
func (p *FeedProcessor) Process(ctx context.Context, feed feeds.Feed) error {
	if p == nil || p.source == nil {
		return fmt.Errorf("feed processor is not initialized")
	}

	query, err := p.query(ctx, feed)
	if err != nil {
		return err
	}

	items, err := p.source.FetchArticles(ctx, query)
	if err != nil {
		return fmt.Errorf("fetch articles for feed %s: %w", feed.ID, err)
	}

	articles := lo.Map(items, func(a wordpress.Article, _ int) domain.Article { return toDomain(a) })
	fresh := p.filterNewArticles(feed, articles)

	var errs []error
	published := 0
	for _, art := range fresh {
		if ctx.Err() != nil {
			break
		}
		if err := p.publish(ctx, feed, art); err != nil {
			errs = append(errs, err)
			continue
		}
		published++
	}

	p.log.InfoObj("feed poll completed", "feed_result", map[string]any{
		"feed_id":   feed.ID,
		"fetched":   len(articles),
		"fresh":     len(fresh),
		"published": published,
		"failed":    len(errs),
	})
	return errors.Join(errs...)
}

// query resolves the feed's category slug to an id.
func (p *FeedProcessor) query(ctx context.Context, feed feeds.Feed) (wordpress.ArticleQuery, error) {
	q := wordpress.ArticleQuery{PerPage: feed.PerPage, Page: 1, Search: feed.Search}
	if feed.Category == "" {
		return q, nil
	}

	cat, err := p.source.FetchCategoryBySlug(ctx, feed.Category)
	if err != nil {
		return q, fmt.Errorf("resolve category %q for feed %s: %w", feed.Category, feed.ID, err)
	}
	if cat == nil {
		return q, fmt.Errorf("feed %s: category %q not found", feed.ID, feed.Category)
	}
	q.Category = cat.ID
	return q, nil
}

// filterNewArticles drops articles the store has seen. Lookup failures are
// logged and the article is kept.
func (p *FeedProcessor) filterNewArticles(feed feeds.Feed, articles []domain.Article) []domain.Article {
	if p.store == nil {
		return articles
	}
	return lo.Filter(articles, func(a domain.Article, _ int) bool {
		seen, err := p.store.Seen(feed.ID, a.Key())
		if err != nil {
			p.log.WarnObj("seen lookup failed", "dedupe_error", map[string]any{
				"feed_id":    feed.ID,
				"article_id": a.ID,
				"error":      err.Error(),
			})
			return true
		}
		return !seen
	})
}

func (p *FeedProcessor) publish(ctx context.Context, feed feeds.Feed, art domain.Article) error {
	if p.publisher != nil {
		evt := publishers.NewEvent(feed.ID, feed.Name, p.origin, art)
		delivered, err := p.publisher.Publish(ctx, evt)
		if err != nil && delivered == 0 {
			return fmt.Errorf("publish article %d (%s): %w", art.ID, art.Slug, err)
		}
		if err != nil {
			p.log.WarnObj("article partially published", "publish_error", map[string]any{
				"feed_id":    feed.ID,
				"article_id": art.ID,
				"delivered":  delivered,
				"error":      err.Error(),
			})
		}
	}

	if p.store != nil {
		if err := p.store.Mark(feed.ID, art.Key()); err != nil {
			p.log.WarnObj("mark article failed", "dedupe_error", map[string]any{
				"feed_id":    feed.ID,
				"article_id": art.ID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}
