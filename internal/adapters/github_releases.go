package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rcatalog/internal/core"
	"rcatalog/internal/ports"
	"rcatalog/internal/shared"
	"rcatalog/internal/types"
)

const (
	DefaultGitHubAPI     = "https://api.github.com"
	githubAcceptHeader   = "application/vnd.github.v3+json"
	defaultGitHubTimeout = 60 * time.Second
	maxErrorBodyBytes    = 1024
)

type GitHubReleaseAdapter struct {
	BaseURL     string
	Token       string
	UserAgent   string
	Client      *http.Client
	RateLimiter *core.RateLimiter
}

type GitHubOption func(*GitHubReleaseAdapter)

func WithGitHubToken(token string) GitHubOption {
	return func(a *GitHubReleaseAdapter) {
		a.Token = strings.TrimSpace(token)
	}
}

func WithGitHubBaseURL(base string) GitHubOption {
	return func(a *GitHubReleaseAdapter) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			a.BaseURL = trimmed
		}
	}
}

func WithUserAgent(agent string) GitHubOption {
	return func(a *GitHubReleaseAdapter) {
		if strings.TrimSpace(agent) != "" {
			a.UserAgent = agent
		}
	}
}

func WithHTTPClient(client *http.Client) GitHubOption {
	return func(a *GitHubReleaseAdapter) {
		if client != nil {
			a.Client = client
		}
	}
}

func WithRateLimiter(limiter *core.RateLimiter) GitHubOption {
	return func(a *GitHubReleaseAdapter) {
		if limiter != nil {
			a.RateLimiter = limiter
		}
	}
}

// NewGitHubReleaseAdapter returns an adapter sharing one HTTP client, and
// thus its idle connections, between the releases and tags requests.
func NewGitHubReleaseAdapter(opts ...GitHubOption) *GitHubReleaseAdapter {
	a := &GitHubReleaseAdapter{
		BaseURL:     DefaultGitHubAPI,
		UserAgent:   "rcatalog",
		Client:      &http.Client{Timeout: defaultGitHubTimeout},
		RateLimiter: core.DefaultRateLimiter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *GitHubReleaseAdapter) FetchReleases(ctx context.Context, repo types.RepoID) (types.ReleaseList, error) {
	if a.RateLimiter.RateLimitedNow() {
		log.Ctx(ctx).Debug().Str("repository", repo.String()).Msg("rate limit in effect, skipping request")
		return types.ReleaseList{Status: types.FetchRateLimited}, nil
	}
	releases, status, err := a.fetchList(ctx, a.endpoint(repo, "releases"))
	if err != nil || status != types.FetchOK {
		return types.ReleaseList{Status: status}, err
	}
	if len(releases) > 0 {
		return types.ReleaseList{Status: types.FetchOK, Records: releases}, nil
	}
	tags, status, err := a.fetchList(ctx, a.endpoint(repo, "tags"))
	if err != nil || status != types.FetchOK {
		return types.ReleaseList{Status: status}, err
	}
	return types.ReleaseList{Status: types.FetchOK, Records: tags, FromTags: true}, nil
}

func (a *GitHubReleaseAdapter) endpoint(repo types.RepoID, kind string) string {
	return fmt.Sprintf("%s/repos/%s/%s/%s", a.BaseURL, repo.Owner, repo.Name, kind)
}

func (a *GitHubReleaseAdapter) fetchList(ctx context.Context, url string) ([]types.ReleaseRecord, types.FetchStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.FetchOK, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create request").
			WithCause(err)
	}
	req.Header.Set("Accept", githubAcceptHeader)
	req.Header.Set("User-Agent", a.UserAgent)
	if a.Token != "" {
		req.Header.Set("Authorization", "token "+a.Token)
	}
	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, types.FetchOK, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("request failed").
			WithCause(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		log.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("repository releases not reachable")
		return nil, types.FetchUnreachable, nil
	case resp.StatusCode == http.StatusForbidden && core.QuotaExhausted(resp.Header):
		a.RateLimiter.RecordHeaders(resp.Header)
		log.Warn().
			Str("url", url).
			Dur("wait", a.RateLimiter.WaitDuration().Round(time.Second)).
			Msg("rate limit exceeded")
		return nil, types.FetchRateLimited, nil
	case resp.StatusCode == http.StatusForbidden:
		return nil, types.FetchOK, errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("github api access forbidden").
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, url, readErrorBody(resp.Body)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, types.FetchOK, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unexpected github api response").
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, url, readErrorBody(resp.Body)))
	}

	var records []types.ReleaseRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, types.FetchOK, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid github api response").
			WithCause(fmt.Errorf("url=%s: %w", url, err))
	}
	return records, types.FetchOK, nil
}

func readErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	return strings.TrimSpace(string(data))
}

var _ ports.ReleaseSourcePort = (*GitHubReleaseAdapter)(nil)
