// Package upstream contains the outbound HTTP adapters for the third-party
// todo and movie APIs. The adapters are stateless: no retries, no caching —
// callers tolerate upstream latency and errors directly.
package upstream

import (
	"net/http"
	"time"
)

// defaultTimeout bounds every upstream call.
const defaultTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
