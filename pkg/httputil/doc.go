// Package httputil fetches remote manifests over HTTP.
//
// # Overview
//
// Manifest sources may be http(s) URLs instead of local files. This
// package provides the outbound plumbing for that case:
//
//   - [Fetcher]: cached GET requests for manifest content
//   - [Retry]: automatic retry with exponential backoff
//
// # Caching
//
// Responses are stored in the shared pipeline cache under readable HTTP
// keys ("http:manifest:<url>") with [cache.TTLHTTP], so repeated runs
// against the same URL skip the network entirely:
//
//	fetcher := httputil.NewFetcher(c, keyer, logger)
//	data, cached, err := fetcher.Fetch(ctx, url, false)
//
// Pass refresh=true to bypass the cache and always refetch.
//
// # Retry
//
// [Retry] wraps requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff with jitter to avoid thundering herd:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchOnce()
//	})
//
// Permanent failures (4xx responses, malformed URLs) are returned
// immediately without retrying.
package httputil
