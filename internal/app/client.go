package app

import (
	"fmt"

	"github.com/samvad-hq/samvad-cms-reader/internal/config"
	"github.com/samvad-hq/samvad-cms-reader/internal/logger"
	"github.com/samvad-hq/samvad-cms-reader/pkg/httpclient"
	"github.com/samvad-hq/samvad-cms-reader/pkg/wordpress"
)

// NewCMSClient builds the CMS API client from config. The transport is a
// resty client honouring the configured timeout.
func NewCMSClient(cfg *config.Config, log logger.Logger) (*wordpress.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	opts := []wordpress.Option{
		wordpress.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
		wordpress.WithLogger(log),
	}
	if cfg.CMSAPIPath != "" {
		opts = append(opts, wordpress.WithAPIPath(cfg.CMSAPIPath))
	}
	if cfg.CMSArticleType != "" {
		opts = append(opts, wordpress.WithArticleType(cfg.CMSArticleType))
	}

	client, err := wordpress.New(cfg.CMSBaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("init cms client: %w", err)
	}
	return client, nil
}
