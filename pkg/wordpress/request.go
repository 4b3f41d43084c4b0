package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CacheMode is an opaque cache hint forwarded to the transport.
type CacheMode string

const (
	CacheDefault      CacheMode = "default"
	CacheNoStore      CacheMode = "no-store"
	CacheReload       CacheMode = "reload"
	CacheNoCache      CacheMode = "no-cache"
	CacheForceCache   CacheMode = "force-cache"
	CacheOnlyIfCached CacheMode = "only-if-cached"
)

// RequestOptions carries per-request cache hints. The zero value means
// CacheNoStore with no revalidation interval.
type RequestOptions struct {
	Cache      CacheMode
	Revalidate *time.Duration
}

// WithRevalidate returns a copy of o with the revalidation interval set.
func (o RequestOptions) WithRevalidate(d time.Duration) RequestOptions {
	o.Revalidate = &d
	return o
}

// cacheControl renders the hints as a Cache-Control request header value.
func (o RequestOptions) cacheControl() string {
	mode := o.Cache
	if mode == "" {
		mode = CacheNoStore
	}

	var directives []string
	switch mode {
	case CacheNoStore:
		directives = append(directives, "no-store")
	case CacheNoCache, CacheReload:
		directives = append(directives, "no-cache")
	case CacheOnlyIfCached:
		directives = append(directives, "only-if-cached")
	}
	if o.Revalidate != nil {
		secs := int64(*o.Revalidate / time.Second)
		if secs < 0 {
			secs = 0
		}
		directives = append(directives, "max-age="+strconv.FormatInt(secs, 10))
	}
	return strings.Join(directives, ", ")
}

// Get issues one GET for path (relative to the base URL, query included)
// and decodes the JSON body into T. Non-2xx responses yield *RequestError;
// decode failures are returned straight from encoding/json.
func Get[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (T, error) {
	var out T
	body, err := c.get(ctx, path, opts)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, opts RequestOptions) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("wordpress client is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	url := c.ResolveURL(path)
	headers := map[string]string{"Accept": "application/json"}
	if cc := opts.cacheControl(); cc != "" {
		headers["Cache-Control"] = cc
	}

	start := time.Now()
	resp, err := c.http.Get(ctx, url, headers)
	if err != nil {
		return nil, fmt.Errorf("wordpress get %s: %w", url, err)
	}

	status := resp.StatusCode()
	body := resp.Body()
	c.log.DebugObj("wordpress request completed", "wordpress_request", map[string]any{
		"url":        url,
		"status":     status,
		"bytes":      len(body),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	if status < 200 || status > 299 {
		return nil, &RequestError{
			StatusCode: status,
			URL:        url,
			Body:       string(body),
		}
	}
	return body, nil
}
