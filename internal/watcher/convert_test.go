package watcher

import (
	"testing"

	"github.com/samvad-hq/samvad-cms-reader/internal/domain"
	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
)

func convertAll(items []wordpress.Article) []domain.Article {
	out := make([]domain.Article, 0, len(items))
	for _, a := range items {
		out = append(out, toDomain(a))
	}
	return out
}

func TestToDomainWithoutEmbedded(t *testing.T) {
	got := toDomain(wordpress.Article{ID: 4, Slug: "bare", Title: wordpress.Rendered{Rendered: "<b>Bare</b>"}})

	if got.Title != "Bare" || got.Description != "" || got.ImageURL != "" || got.AuthorName != "" {
		t.Fatalf("unexpected article %+v", got)
	}
	if got.ImageAlt != "<b>Bare</b>" {
		t.Fatalf("alt should fall back to rendered title, got %q", got.ImageAlt)
	}
	if got.Categories != nil {
		t.Fatalf("expected no categories, got %v", got.Categories)
	}
	if got.Key() != "article:4" {
		t.Fatalf("Key() = %q", got.Key())
	}
}
