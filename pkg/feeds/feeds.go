// Package feeds loads the CMS article feeds the watcher polls (YAML/JSON).
package feeds

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samvad-hq/samvad-cms-reader/pkg/configfile"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// Feed is one watched slice of the CMS: an optional category slug and/or
// search term, polled one page at a time.
type Feed struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Search   string `json:"search" yaml:"search"`
	PerPage  int    `json:"per_page" yaml:"per_page"`
	Enabled  *bool  `json:"enabled" yaml:"enabled"`
}

type fileFormat struct {
	Feeds []Feed `json:"feeds" yaml:"feeds"`
}

// Registry holds validated feed definitions.
type Registry struct {
	mu    sync.RWMutex
	feeds []Feed
	idx   map[string]Feed
}

// LoadRegistry loads feeds from a YAML or JSON file.
func LoadRegistry(path string) (*Registry, error) {
	var parsed fileFormat
	if err := configfile.Load(path, &parsed); err != nil {
		return nil, fmt.Errorf("load feeds file: %w", err)
	}
	return NewRegistry(parsed.Feeds)
}

// NewRegistry sanitizes and validates feeds.
func NewRegistry(feeds []Feed) (*Registry, error) {
	if len(feeds) == 0 {
		return nil, errors.New("feeds file contains no feeds entries")
	}

	reg := &Registry{
		feeds: make([]Feed, len(feeds)),
		idx:   make(map[string]Feed, len(feeds)),
	}
	for i := range feeds {
		f := sanitizeFeed(feeds[i])
		if err := validateFeed(f); err != nil {
			return nil, fmt.Errorf("feeds[%d]: %w", i, err)
		}
		if _, exists := reg.idx[f.ID]; exists {
			return nil, fmt.Errorf("duplicate feed id %q", f.ID)
		}
		reg.feeds[i] = f
		reg.idx[f.ID] = f
	}
	return reg, nil
}

func sanitizeFeed(f Feed) Feed {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.TrimSpace(f.Search)
	if f.Name == "" {
		f.Name = f.ID
	}
	if f.PerPage <= 0 {
		f.PerPage = defaultPerPage
	}
	if f.Enabled == nil {
		def := true
		f.Enabled = &def
	}
	return f
}

func validateFeed(f Feed) error {
	if f.ID == "" {
		return errors.New("id is required")
	}
	if f.PerPage > maxPerPage {
		return fmt.Errorf("per_page for feed %q must be at most %d", f.ID, maxPerPage)
	}
	return nil
}

// IsEnabled returns the enabled flag, defaulting to true.
func (f Feed) IsEnabled() bool {
	if f.Enabled == nil {
		return true
	}
	return *f.Enabled
}

// ByID returns the feed with the given id.
func (r *Registry) ByID(id string) (Feed, bool) {
	if r == nil {
		return Feed{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.idx[strings.TrimSpace(id)]
	return f, ok
}

// All returns a copy of every configured feed.
func (r *Registry) All() []Feed {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Feed, len(r.feeds))
	copy(out, r.feeds)
	return out
}

// Enabled returns the feeds that are switched on.
func (r *Registry) Enabled() []Feed {
	all := r.All()
	out := make([]Feed, 0, len(all))
	for _, f := range all {
		if f.IsEnabled() {
			out = append(out, f)
		}
	}
	return out
}
