package domain

import "fmt"

// UpstreamError reports a non-2xx response from a third-party API. The
// upstream status code is preserved so inbound adapters can propagate it.
type UpstreamError struct {
	Status int
	URL    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.Status)
}
