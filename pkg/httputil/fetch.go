package httputil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ahuangsnail/quire/pkg/cache"
	qerrors "github.com/ahuangsnail/quire/pkg/errors"
	"github.com/ahuangsnail/quire/pkg/observability"
)

const (
	// httpTimeout bounds a single manifest request.
	httpTimeout = 10 * time.Second

	// maxManifestSize caps remote manifest downloads. Manifests are small
	// text files; anything larger is a misdirected URL.
	maxManifestSize = 4 << 20
)

// IsRemote reports whether source names an http(s) URL rather than a
// local file path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetcher retrieves remote manifests with caching and retry.
//
// Responses are cached under [cache.Keyer] HTTP keys with [cache.TTLHTTP],
// so repeated runs against the same URL skip the network. Transient
// failures are retried with exponential backoff; 4xx responses are not.
type Fetcher struct {
	client *http.Client
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger

	retryAttempts int
	retryDelay    time.Duration
}

// NewFetcher creates a Fetcher backed by the given cache and keyer.
// A nil cache disables response caching; a nil keyer falls back to the
// default key layout.
func NewFetcher(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{
		client:        &http.Client{Timeout: httpTimeout},
		cache:         c,
		keyer:         keyer,
		logger:        logger,
		retryAttempts: 3,
		retryDelay:    time.Second,
	}
}

// Fetch returns the manifest bytes at rawURL. The second return value
// reports whether the bytes came from cache. When refresh is true the
// cache is bypassed and the manifest is always refetched.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, refresh bool) ([]byte, bool, error) {
	if !IsRemote(rawURL) {
		return nil, false, qerrors.New(qerrors.ErrCodeInvalidPath, "not a remote manifest source: %s", rawURL)
	}

	key := f.keyer.HTTPKey("manifest", rawURL)
	if !refresh {
		if data, hit, err := f.cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "http")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "http")
	}

	var data []byte
	err := Retry(ctx, f.retryAttempts, f.retryDelay, func() error {
		var err error
		data, err = f.get(ctx, rawURL)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	if err := f.cache.Set(ctx, key, data, cache.TTLHTTP); err == nil {
		observability.Cache().OnCacheSet(ctx, "http", len(data))
	}
	f.logger.Debug("fetched remote manifest", "url", rawURL, "bytes", len(data))
	return data, false, nil
}

// get performs a single GET request and classifies failures as retryable
// or permanent.
func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidPath, err, "fetch manifest %s", rawURL)
	}
	req.Header.Set("Accept", "application/toml, text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: qerrors.Wrap(qerrors.ErrCodeNetwork, err, "fetch manifest %s", rawURL)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, rawURL); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize+1))
	if err != nil {
		return nil, &RetryableError{Err: qerrors.Wrap(qerrors.ErrCodeNetwork, err, "read manifest %s", rawURL)}
	}
	if len(data) > maxManifestSize {
		return nil, qerrors.New(qerrors.ErrCodeInvalidManifest, "manifest %s exceeds %d bytes", rawURL, maxManifestSize)
	}
	return data, nil
}

func checkStatus(code int, rawURL string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return qerrors.New(qerrors.ErrCodeFileNotFound, "manifest %s not found", rawURL)
	case code >= 500 || code == http.StatusTooManyRequests:
		return &RetryableError{Err: qerrors.New(qerrors.ErrCodeNetwork, "fetch manifest %s: status %d", rawURL, code)}
	default:
		return qerrors.New(qerrors.ErrCodeNetwork, "fetch manifest %s: status %d", rawURL, code)
	}
}
