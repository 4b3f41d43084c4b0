package httpclient

import "context"

// Response is the part of an HTTP response the CMS client and publishers read.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP GET calls so callers can inject fakes or a different transport.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// ClientFunc adapts a plain function to the Client interface.
type ClientFunc func(ctx context.Context, url string, headers map[string]string) (Response, error)

// Get calls f.
func (f ClientFunc) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	return f(ctx, url, headers)
}

// StaticResponse is a fixed Response, handy for fakes.
type StaticResponse struct {
	Status  int
	Payload []byte
}

func (r StaticResponse) Body() []byte    { return r.Payload }
func (r StaticResponse) StatusCode() int { return r.Status }
