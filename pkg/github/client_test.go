package github_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	gogithub "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/github"
	"github.com/gofer-sh/gofer/pkg/results"
)

const testRepo = "acme/widgets"

// newTestClient points a client at a local server. WithEnterpriseURLs gives
// every request the /api/v3 prefix.
func newTestClient(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gh, err := gogithub.NewClient(nil).WithEnterpriseURLs(server.URL, server.URL)
	require.NoError(t, err)
	return github.NewClientWithGitHub(gh, "env")
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestClient_CreateIssue(t *testing.T) {
	t.Parallel()

	t.Run("creates an issue with labels and assignees", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			assert.Equal(t, "Fix the flaky export", body["title"])
			assert.Equal(t, "Repro steps attached.", body["body"])
			assert.Equal(t, []any{"bug", "export"}, body["labels"])
			assert.Equal(t, []any{"alice"}, body["assignees"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"number":   101,
				"html_url": "https://github.com/acme/widgets/issues/101",
			})
		})

		client := newTestClient(t, mux)
		result, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{
			Title:     "Fix the flaky export",
			Body:      "Repro steps attached.",
			Labels:    []string{"bug", "export"},
			Assignees: []string{"alice"},
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 101, result.Number)
		assert.Equal(t, "https://github.com/acme/widgets/issues/101", result.URL)
		assert.Equal(t, testRepo, result.Repo)
	})

	t.Run("numeric milestone passes through", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			assert.Equal(t, float64(5), body["milestone"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"number": 102})
		})

		client := newTestClient(t, mux)
		result, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{
			Title:     "Numbered milestone",
			Body:      "b",
			Milestone: "5",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("milestone title resolves against open milestones", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v3/repos/acme/widgets/milestones", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "open", r.URL.Query().Get("state"))
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"number": 1, "title": "Backlog"},
				{"number": 3, "title": "Q3 Release"},
			})
		})
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			assert.Equal(t, float64(3), body["milestone"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"number": 103})
		})

		client := newTestClient(t, mux)
		result, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{
			Title:     "Titled milestone",
			Body:      "b",
			Milestone: "q3 release",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("unknown milestone is skipped", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v3/repos/acme/widgets/milestones", func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode([]map[string]any{})
		})
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			_, present := body["milestone"]
			assert.False(t, present)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"number": 104})
		})

		client := newTestClient(t, mux)
		result, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{
			Title:     "No such milestone",
			Body:      "b",
			Milestone: "Q9 Release",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("milestone lookup failure still creates the issue", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v3/repos/acme/widgets/milestones", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "boom"})
		})
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			_, present := body["milestone"]
			assert.False(t, present)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"number": 105})
		})

		client := newTestClient(t, mux)
		result, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{
			Title:     "Milestone lookup down",
			Body:      "b",
			Milestone: "Q3 Release",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("unknown repository becomes a not-found error", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "Not Found"})
		})

		client := newTestClient(t, mux)
		_, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{Title: "t", Body: "b"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, "Repository not found: acme/widgets", results.FromError(err).Error)
	})

	t.Run("vendor error carries the API message", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "Validation Failed"})
		})

		client := newTestClient(t, mux)
		_, err := client.CreateIssue(t.Context(), testRepo, github.IssueRequest{Title: "t", Body: "b"})
		require.Error(t, err)
		assert.True(t, errors.IsVendorAPI(err))
		assert.Equal(t, "API error: Validation Failed", results.FromError(err).Error)
	})

	t.Run("malformed repository reference", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.NewServeMux())
		_, err := client.CreateIssue(t.Context(), "not-a-repo", github.IssueRequest{Title: "t", Body: "b"})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Contains(t, err.Error(), `Invalid repository "not-a-repo"`)
	})
}

func TestClient_CreateComment(t *testing.T) {
	t.Parallel()

	t.Run("comments on an issue", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			assert.Equal(t, "Fixed in 1.4.2.", body["body"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       999,
				"html_url": "https://github.com/acme/widgets/issues/7#issuecomment-999",
			})
		})

		client := newTestClient(t, mux)
		result, err := client.CreateComment(t.Context(), testRepo, 7, "Fixed in 1.4.2.")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(999), result.ID)
		assert.Equal(t, "https://github.com/acme/widgets/issues/7#issuecomment-999", result.URL)
	})

	t.Run("missing issue becomes a not-found error", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v3/repos/acme/widgets/issues/7/comments", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "Not Found"})
		})

		client := newTestClient(t, mux)
		_, err := client.CreateComment(t.Context(), testRepo, 7, "hello")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestClient_AuthStatus(t *testing.T) {
	t.Parallel()

	t.Run("reports login and token source", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v3/user", func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"login": "octocat"})
		})

		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		gh, err := gogithub.NewClient(nil).WithEnterpriseURLs(server.URL, server.URL)
		require.NoError(t, err)

		client := github.NewClientWithGitHub(gh, "keychain")
		result, err := client.AuthStatus(t.Context())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "octocat", result.Login)
		assert.Equal(t, "keychain", result.Source)
	})

	t.Run("rejected token surfaces the API message", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v3/user", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "Bad credentials"})
		})

		client := newTestClient(t, mux)
		_, err := client.AuthStatus(t.Context())
		require.Error(t, err)
		assert.True(t, errors.IsVendorAPI(err))
		assert.Equal(t, "API error: Bad credentials", results.FromError(err).Error)
	})
}
