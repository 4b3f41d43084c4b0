package watcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/samvad-cms-reader/internal/logger"
	"github.com/samvad-hq/samvad-cms-reader/pkg/feeds"
)

// Service runs a poll pass over every configured feed.
type Service struct {
	processor *FeedProcessor
	log       logger.Logger
}

// NewService wraps a feed processor.
func NewService(processor *FeedProcessor, log logger.Logger) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{processor: processor, log: log}
}

// Run polls each feed once. Per-feed failures are logged and joined.
func (s *Service) Run(ctx context.Context, list []feeds.Feed) error {
	if s == nil || s.processor == nil {
		return fmt.Errorf("watcher service is not initialized")
	}
	if len(list) == 0 {
		return fmt.Errorf("no feeds configured for polling")
	}

	errs := s.runAll(ctx, list)
	return errors.Join(errs...)
}

func (s *Service) runAll(ctx context.Context, list []feeds.Feed) []error {
	var errs []error
	for _, feed := range list {
		if ctx.Err() != nil {
			break
		}
		if err := s.processor.Process(ctx, feed); err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("feed poll failed", "feed_error", map[string]any{
				"feed_id": feed.ID,
				"error":   err.Error(),
			})
		}
	}
	return errs
}
