// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFile writes content below dir and returns the full path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// GitHubResponse is a canned API answer.
type GitHubResponse struct {
	Status  int
	Headers map[string]string
	Body    string
}

// GitHubMock serves canned responses keyed by request path and records the
// paths it was asked for. Unknown paths answer 404.
type GitHubMock struct {
	URL string

	mu        sync.Mutex
	responses map[string]GitHubResponse
	requests  []string
	auth      []string
}

func NewGitHubMock(t *testing.T, responses map[string]GitHubResponse) *GitHubMock {
	t.Helper()
	mock := &GitHubMock{responses: responses}
	server := httptest.NewServer(http.HandlerFunc(mock.serve))
	t.Cleanup(server.Close)
	mock.URL = server.URL
	return mock
}

func (m *GitHubMock) serve(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, r.URL.Path)
	m.auth = append(m.auth, r.Header.Get("Authorization"))
	response, ok := m.responses[r.URL.Path]
	m.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	w.Header().Set("Content-Type", "application/json")
	if response.Status != 0 {
		w.WriteHeader(response.Status)
	}
	_, _ = w.Write([]byte(response.Body))
}

// Requests returns the request paths in arrival order.
func (m *GitHubMock) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}

// AuthHeaders returns the Authorization header of every request.
func (m *GitHubMock) AuthHeaders() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.auth...)
}

// SampleCatalogResponses answers for the repositories referenced by
// fixtures/catalog-sample.yaml.
func SampleCatalogResponses() map[string]GitHubResponse {
	return map[string]GitHubResponse{
		"/repos/grimbough/Rhdf5lib/releases": {Body: `[
			{"tag_name": "v1.22.0-rc1", "prerelease": true},
			{"tag_name": "v1.21.1", "prerelease": false},
			{"tag_name": "v1.20.0", "prerelease": false}
		]`},
		"/repos/rspatial/raster/releases": {Body: `[]`},
		"/repos/rspatial/raster/tags":     {Body: `[{"name": "v3.6-26"}, {"name": "v3.6-3"}, {"name": "nightly"}]`},
		"/repos/pachterlab/sleuth/releases": {Body: `[
			{"tag_name": "v0.30.1", "prerelease": false},
			{"tag_name": "v0.30.0", "prerelease": false}
		]`},
	}
}
