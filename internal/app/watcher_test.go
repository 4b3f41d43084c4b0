package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samvad-hq/samvad-cms-reader/internal/config"
	"github.com/samvad-hq/samvad-cms-reader/pkg/publishers"
	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNewCMSClientRequiresBaseURL(t *testing.T) {
	_, err := NewCMSClient(&config.Config{HTTPTimeout: time.Second}, nil)
	if !errors.Is(err, wordpress.ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestNewCMSClientAppliesConfig(t *testing.T) {
	client, err := NewCMSClient(&config.Config{
		CMSBaseURL:  "https://cms.example.com/",
		HTTPTimeout: time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("NewCMSClient: %v", err)
	}
	if client.BaseURL() != "https://cms.example.com" {
		t.Fatalf("BaseURL() = %q", client.BaseURL())
	}
}

func TestWatcherPublishesArticlesFromCMS(t *testing.T) {
	cms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/article" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":7,"slug":"hello","date":"2026-10-01T09:00:00","title":{"rendered":"Hello"},"content":{"rendered":"<p>Body</p>","protected":false},"author":1,"categories":[]}]`)
	}))
	defer cms.Close()

	received := make(chan publishers.Event, 1)
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var evt publishers.Event
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			t.Errorf("decode event: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
		select {
		case received <- evt:
		default:
		}
	}))
	defer sink.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		CMSBaseURL:     cms.URL,
		HTTPTimeout:    5 * time.Second,
		FeedsFile:      writeFile(t, dir, "feeds.yaml", "feeds:\n  - id: latest\n    name: Latest\n"),
		PublishersFile: writeFile(t, dir, "publishers.yaml", fmt.Sprintf("publishers:\n  - id: sink\n    type: http\n    http:\n      url: %s\n", sink.URL)),
		PollInterval:   time.Hour,
		StorageType:    "none",
	}

	w, err := NewWatcher(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case evt := <-received:
		if evt.FeedID != "latest" || evt.Article.ID != 7 || evt.Article.Title != "Hello" {
			t.Fatalf("unexpected event %+v", evt)
		}
		if evt.Source != cms.URL {
			t.Fatalf("event source = %q, want %q", evt.Source, cms.URL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event delivered")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestNewWatcherRequiresPublishers(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		CMSBaseURL:     "https://cms.example.com",
		HTTPTimeout:    time.Second,
		FeedsFile:      writeFile(t, dir, "feeds.yaml", "feeds:\n  - id: latest\n"),
		PublishersFile: writeFile(t, dir, "publishers.yaml", "publishers:\n  - id: off\n    type: http\n    enabled: false\n    http:\n      url: http://localhost\n"),
		PollInterval:   time.Minute,
		StorageType:    "none",
	}
	if _, err := NewWatcher(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error when no publishers are enabled")
	}
}
