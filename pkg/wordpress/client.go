package wordpress

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/samvad-hq/samvad-cms-reader/pkg/httpclient"
)

const (
	// DefaultAPIPath is the REST namespace of WordPress core routes.
	DefaultAPIPath = "/wp-json/wp/v2"
	// DefaultArticleType is the REST base of the custom "article" post type.
	DefaultArticleType = "article"

	defaultTimeout = 15 * time.Second
)

// Client issues typed GET requests against one CMS endpoint.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL     string
	apiPath     string
	articleType string
	timeout     time.Duration
	reqOpts     RequestOptions
	http        httpclient.Client
	log         Logger
}

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithTimeout sets the timeout of the default transport. It has no effect
// when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log Logger) Option {
	return func(c *Client) error {
		c.log = ensureLogger(log)
		return nil
	}
}

// WithAPIPath overrides the REST namespace, e.g. "/wp-json/wp/v2".
func WithAPIPath(path string) Option {
	return func(c *Client) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("api path must not be empty")
		}
		c.apiPath = "/" + strings.Trim(path, "/")
		return nil
	}
}

// WithArticleType overrides the REST base of the article post type, e.g. "posts".
func WithArticleType(typ string) Option {
	return func(c *Client) error {
		typ = strings.Trim(strings.TrimSpace(typ), "/")
		if typ == "" {
			return fmt.Errorf("article type must not be empty")
		}
		c.articleType = typ
		return nil
	}
}

// WithRequestOptions sets the cache hints sent by every resource operation.
func WithRequestOptions(opts RequestOptions) Option {
	return func(c *Client) error {
		c.reqOpts = opts
		return nil
	}
}

// New builds a Client for baseURL. A blank baseURL yields ErrMissingBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse wordpress base url: %w", err)
	}

	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiPath:     DefaultAPIPath,
		articleType: DefaultArticleType,
		timeout:     defaultTimeout,
		log:         noopLogger{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}
	return c, nil
}

// BaseURL returns the configured endpoint without its trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// ResolveURL joins the base URL and a path that already carries its query.
func (c *Client) ResolveURL(path string) string { return c.baseURL + path }

func (c *Client) resource(name string) string {
	return c.apiPath + "/" + name
}
