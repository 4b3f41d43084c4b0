package wordpress

import (
	"errors"
	"fmt"
)

// ErrMissingBaseURL is returned by New when no CMS endpoint is configured.
var ErrMissingBaseURL = errors.New("wordpress base url is not set")

// RequestError reports a non-2xx response from the CMS.
type RequestError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("wordpress fetch failed %d: %s\n%s", e.StatusCode, e.URL, e.Body)
}

// IsStatus reports whether err is a RequestError with the given status code.
func IsStatus(err error, status int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == status
}
