package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
	"golang.org/x/sync/errgroup"
)

// reader is the part of the CMS client the commands use.
type reader interface {
	FetchArticles(ctx context.Context, q wordpress.ArticleQuery) ([]wordpress.Article, error)
	FetchArticleBySlug(ctx context.Context, slug string) (*wordpress.Article, error)
	FetchCategories(ctx context.Context) ([]wordpress.Category, error)
	FetchCategoryBySlug(ctx context.Context, slug string) (*wordpress.Category, error)
}

type env struct {
	client reader
	out    io.Writer
}

// shared is set by setup before any command executes.
var shared *env

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ArticlesCmd lists one page of articles.
type ArticlesCmd struct {
	PerPage  int    `long:"per-page" default:"10" description:"articles per page"`
	Page     int    `long:"page" default:"1" description:"page number"`
	Category int    `long:"category" description:"category id filter"`
	Search   string `long:"search" description:"full-text search term"`
}

func (c *ArticlesCmd) Execute(_ []string) error {
	return c.run(context.Background(), shared)
}

func (c *ArticlesCmd) run(ctx context.Context, e *env) error {
	items, err := e.client.FetchArticles(ctx, wordpress.ArticleQuery{
		PerPage:  c.PerPage,
		Page:     c.Page,
		Category: c.Category,
		Search:   c.Search,
	})
	if err != nil {
		return err
	}
	return e.print(items)
}

type slugArg struct {
	Slug string `positional-arg-name:"SLUG" required:"yes"`
}

// ArticleCmd prints one article, or null.
type ArticleCmd struct {
	Args slugArg `positional-args:"yes"`
}

func (c *ArticleCmd) Execute(_ []string) error {
	return c.run(context.Background(), shared)
}

func (c *ArticleCmd) run(ctx context.Context, e *env) error {
	art, err := e.client.FetchArticleBySlug(ctx, c.Args.Slug)
	if err != nil {
		return err
	}
	return e.print(art)
}

// CategoriesCmd lists categories.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Execute(_ []string) error {
	return c.run(context.Background(), shared)
}

func (c *CategoriesCmd) run(ctx context.Context, e *env) error {
	cats, err := e.client.FetchCategories(ctx)
	if err != nil {
		return err
	}
	return e.print(cats)
}

// CategoryCmd prints one category, or null.
type CategoryCmd struct {
	Args slugArg `positional-args:"yes"`
}

func (c *CategoryCmd) Execute(_ []string) error {
	return c.run(context.Background(), shared)
}

func (c *CategoryCmd) run(ctx context.Context, e *env) error {
	cat, err := e.client.FetchCategoryBySlug(ctx, c.Args.Slug)
	if err != nil {
		return err
	}
	return e.print(cat)
}

// ImageCmd prints the featured image projection of an article together
// with its author.
type ImageCmd struct {
	Args slugArg `positional-args:"yes"`
}

type imageView struct {
	Slug   string          `json:"slug"`
	Image  wordpress.Image `json:"image"`
	Author *wordpress.User `json:"author"`
}

func (c *ImageCmd) Execute(_ []string) error {
	return c.run(context.Background(), shared)
}

func (c *ImageCmd) run(ctx context.Context, e *env) error {
	art, err := e.client.FetchArticleBySlug(ctx, c.Args.Slug)
	if err != nil {
		return err
	}
	if art == nil {
		return e.print(nil)
	}
	return e.print(imageView{
		Slug:   art.Slug,
		Image:  wordpress.FeaturedImage(*art),
		Author: wordpress.Author(*art),
	})
}

// IndexCmd fetches the data an index page renders: the latest articles and
// the category list, concurrently.
type IndexCmd struct {
	PerPage int `long:"per-page" default:"10" description:"articles per page"`
}

type indexView struct {
	Articles   []wordpress.Article  `json:"articles"`
	Categories []wordpress.Category `json:"categories"`
}

func (c *IndexCmd) Execute(_ []string) error {
	return c.run(context.Background(), shared)
}

func (c *IndexCmd) run(ctx context.Context, e *env) error {
	var view indexView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := e.client.FetchArticles(gctx, wordpress.ArticleQuery{PerPage: c.PerPage, Page: 1})
		if err != nil {
			return fmt.Errorf("articles: %w", err)
		}
		view.Articles = items
		return nil
	})
	g.Go(func() error {
		cats, err := e.client.FetchCategories(gctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		view.Categories = cats
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return e.print(view)
}
