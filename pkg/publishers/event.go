package publishers

import (
	"time"

	"github.com/samvad-hq/samvad-cms-reader/internal/domain"
)

// Event is the payload published for every newly seen CMS article.
type Event struct {
	FeedID     string         `json:"feed_id"`
	FeedName   string         `json:"feed_name"`
	Source     string         `json:"source"`
	Article    domain.Article `json:"article"`
	ObservedAt time.Time      `json:"observed_at"`
}

// NewEvent constructs an Event for an article seen on the given feed.
func NewEvent(feedID, feedName, source string, article domain.Article) Event {
	return Event{
		FeedID:     feedID,
		FeedName:   feedName,
		Source:     source,
		Article:    article,
		ObservedAt: time.Now().UTC(),
	}
}
