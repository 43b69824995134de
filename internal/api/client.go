package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	// ErrFetchFailed wraps every transport, status or decode failure. The UI
	// shows one generic message for all of them.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrNotFound is returned by LookupByID when no meal has the id.
	ErrNotFound = errors.New("recipe not found")
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64       // requests per second, 0 = unlimited
	CacheTTL  time.Duration // 0 disables the on-disk response cache
	CacheDir  string
	UserAgent string
	Transport http.RoundTripper
	Logger    *logrus.Logger
}

type Client struct {
	rest    *ghAPI.RESTClient
	baseURL string
	limiter *rate.Limiter
	log     *logrus.Logger
}

func NewClient(opts Options) (*Client, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "recipe-tui"
	}

	ghOpts := ghAPI.ClientOptions{
		Host: u.Host,
		// go-gh resolves gh credentials when no token is set. The recipe
		// API authenticates through the key in the path and ignores this.
		AuthToken:          "anonymous",
		Transport:          transport,
		Timeout:            opts.Timeout,
		SkipDefaultHeaders: true,
		Headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": ua,
		},
		LogIgnoreEnv: true,
	}
	if opts.CacheTTL > 0 {
		dir := opts.CacheDir
		if dir == "" {
			dir = defaultCacheDir()
		}
		ghOpts.EnableCache = true
		ghOpts.CacheTTL = opts.CacheTTL
		ghOpts.CacheDir = dir
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		ghOpts.Log = log.WriterLevel(logrus.DebugLevel)
	}

	rest, err := ghAPI.NewRESTClient(ghOpts)
	if err != nil {
		return nil, fmt.Errorf("create recipe api client: %w", err)
	}

	limit := rate.Inf
	burst := 1
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
		burst = int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
	}

	return &Client{
		rest:    rest,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	s := c.baseURL + "/" + path
	if len(query) > 0 {
		s += "?" + query.Encode()
	}
	return s
}

// Get issues one GET against the recipe API and decodes the JSON body into
// result. Absolute URLs bypass go-gh's GitHub host prefixing.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	target := c.endpoint(path, query)
	start := time.Now()
	err := c.rest.DoWithContext(ctx, http.MethodGet, target, nil, result)
	entry := c.log.WithFields(logrus.Fields{
		"path":     path,
		"query":    query.Encode(),
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("recipe api request failed")
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	entry.Debug("recipe api request")
	return nil
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "recipe-tui", "http")
}
