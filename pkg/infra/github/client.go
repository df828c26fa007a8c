package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
	"github.com/m-mizutani/ghtrail/pkg/infra/metrics"
)

const (
	defaultPerPage = 100
	maxPerPage     = 100

	endpointEvents  = "events"
	endpointStarred = "starred"
	endpointRepos   = "repos"
)

type config struct {
	token      string
	baseURL    string
	userAgent  string
	perPage    int
	httpClient *http.Client
}

// Option is a functional option for Client
type Option func(*config)

// WithToken authenticates requests with a personal access token
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithBaseURL points the client at a GitHub Enterprise server or a test server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

// WithPerPage sets the page size requested from GitHub. Only the first page is read.
func WithPerPage(perPage int) Option {
	return func(c *config) {
		c.perPage = perPage
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// Client fetches activity collections from the GitHub REST API
type Client struct {
	gh      *github.Client
	perPage int
}

// NewClient creates a GitHub REST client
func NewClient(opts ...Option) (*Client, error) {
	cfg := &config{
		userAgent: types.ServiceName + "/" + types.Version,
		perPage:   defaultPerPage,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.perPage <= 0 || cfg.perPage > maxPerPage {
		return nil, goerr.New("per page must be between 1 and 100",
			goerr.V("per_page", cfg.perPage),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	gh := github.NewClient(cfg.httpClient)
	if cfg.token != "" {
		gh = gh.WithAuthToken(cfg.token)
	}
	gh.UserAgent = cfg.userAgent

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub base URL",
				goerr.V("base_url", cfg.baseURL),
				goerr.T(types.ErrTagInvalidArgument),
			)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:      gh,
		perPage: cfg.perPage,
	}, nil
}

// ListUserEvents returns the first page of events performed by username
func (c *Client) ListUserEvents(ctx context.Context, username string) ([]*model.Envelope, error) {
	logger := ctxlog.From(ctx)
	start := time.Now()

	events, resp, err := c.gh.Activity.ListEventsPerformedByUser(ctx, username, false, &github.ListOptions{
		PerPage: c.perPage,
	})
	c.observe(endpointEvents, start, err)
	if err != nil {
		return nil, classify(err, endpointEvents, username)
	}
	logRate(ctx, endpointEvents, resp)

	envs := make([]*model.Envelope, 0, len(events))
	for _, ev := range events {
		if ev == nil {
			continue
		}
		envs = append(envs, toEnvelope(ctx, ev))
	}
	metrics.EnvelopesFetched.Add(float64(len(envs)))

	logger.Debug("Fetched user events",
		"username", username,
		"count", len(envs),
	)

	return envs, nil
}

// ListStarred returns the raw elements of the user's starred listing
func (c *Client) ListStarred(ctx context.Context, username string) ([]any, error) {
	return c.listRaw(ctx, endpointStarred, username)
}

// ListRepositories returns the raw elements of the user's repository listing
func (c *Client) ListRepositories(ctx context.Context, username string) ([]any, error) {
	return c.listRaw(ctx, endpointRepos, username)
}

func (c *Client) listRaw(ctx context.Context, endpoint, username string) ([]any, error) {
	logger := ctxlog.From(ctx)
	start := time.Now()

	path := fmt.Sprintf("users/%s/%s?per_page=%d", url.PathEscape(username), endpoint, c.perPage)
	req, err := c.gh.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build GitHub request",
			goerr.V("endpoint", endpoint),
			goerr.V("username", username),
			goerr.T(types.ErrTagTransport),
		)
	}

	var elems []any
	resp, err := c.gh.Do(ctx, req, &elems)
	c.observe(endpoint, start, err)
	if err != nil {
		return nil, classify(err, endpoint, username)
	}
	logRate(ctx, endpoint, resp)

	logger.Debug("Fetched user listing",
		"endpoint", endpoint,
		"username", username,
		"count", len(elems),
	)

	return elems, nil
}

func (c *Client) observe(endpoint string, start time.Time, err error) {
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(float64(time.Since(start).Milliseconds()))
	metrics.UpstreamRequests.WithLabelValues(endpoint, outcome(err)).Inc()
}

// toEnvelope keeps the payload as decoded JSON. A payload that cannot be decoded is
// dropped rather than failing the whole batch.
func toEnvelope(ctx context.Context, ev *github.Event) *model.Envelope {
	env := &model.Envelope{
		Kind: model.EventKind(ev.GetType()),
	}

	if ev.Repo != nil && ev.Repo.Name != nil {
		env.Repo = &model.Repo{Name: ev.Repo.GetName()}
	}

	if ev.RawPayload != nil {
		var body any
		if err := json.Unmarshal(*ev.RawPayload, &body); err != nil {
			ctxlog.From(ctx).Warn("Dropping undecodable event payload",
				"event_id", ev.GetID(),
				"type", ev.GetType(),
				"error", err,
			)
		} else {
			env.Payload = body
		}
	}

	if ev.CreatedAt != nil {
		env.OccurredAt = ev.CreatedAt.UTC().Format(time.RFC3339)
	}

	return env
}

func logRate(ctx context.Context, endpoint string, resp *github.Response) {
	if resp == nil {
		return
	}
	ctxlog.From(ctx).Debug("GitHub rate limit",
		"endpoint", endpoint,
		"limit", resp.Rate.Limit,
		"remaining", resp.Rate.Remaining,
	)
}

// classify maps go-github errors onto the not_found / upstream / transport taxonomy
func classify(err error, endpoint, username string) error {
	opts := []goerr.Option{
		goerr.V("endpoint", endpoint),
		goerr.V("username", username),
	}

	switch outcome(err) {
	case metrics.OutcomeNotFound:
		return goerr.Wrap(err, "user not found: "+username, append(opts, goerr.T(types.ErrTagNotFound))...)

	case metrics.OutcomeUpstream:
		var respErr *github.ErrorResponse
		if errors.As(err, &respErr) && respErr.Response != nil {
			opts = append(opts, goerr.V("status", respErr.Response.StatusCode))
		}
		return goerr.Wrap(err, "GitHub API error", append(opts, goerr.T(types.ErrTagUpstream))...)

	default:
		return goerr.Wrap(err, "failed to reach GitHub API", append(opts, goerr.T(types.ErrTagTransport))...)
	}
}

// outcome is also the metrics label. Rate limit errors are checked first because
// go-github reports them with a 403 or 429 response attached.
func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return metrics.OutcomeUpstream
	case errors.As(err, &respErr):
		if respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
			return metrics.OutcomeNotFound
		}
		return metrics.OutcomeUpstream
	default:
		return metrics.OutcomeTransport
	}
}
