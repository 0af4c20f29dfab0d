package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("default client", func(t *testing.T) {
		c := NewClient("http://localhost:8000")
		require.Equal(t, "http://localhost:8000", c.baseURL)
		require.NotNil(t, c.httpClient)
		require.Equal(t, 30*time.Second, c.httpClient.Timeout)
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("http://localhost:8000", WithHTTPClient(custom))
		require.Same(t, custom, c.httpClient)
	})

	t.Run("with custom timeout", func(t *testing.T) {
		c := NewClient("http://localhost:8000", WithTimeout(5*time.Second))
		require.Equal(t, 5*time.Second, c.httpClient.Timeout)
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/search", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req SearchRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "diabetes treatment options", req.Query)
			require.Equal(t, 5, req.Limit)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(SearchResponse{
				Query: req.Query,
				Results: []SearchResult{
					{ID: "1", Score: 0.91, Document: Document{PMID: "12345", Title: "A"}},
					{ID: "2", Score: 0.83, Document: Document{PMID: "67890", Title: "B"}},
					{ID: "3", Score: 0.72, Document: Document{PMID: "13579", Title: "C"}},
				},
				TotalTime:     0.123,
				EmbeddingTime: 0.01,
				SearchTime:    0.11,
				ResultsCount:  3,
			})
		}))
		defer server.Close()

		c := NewClient(server.URL)
		resp, err := c.Search(context.Background(), "diabetes treatment options", 5)
		require.NoError(t, err)
		require.Len(t, resp.Results, 3)
		require.Equal(t, 3, resp.ResultsCount)
		require.Equal(t, 0.123, resp.TotalTime)
		require.Equal(t, "12345", resp.Results[0].Document.PMID)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"Search failed: model not loaded"}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		resp, err := c.Search(context.Background(), "anything", 5)
		require.Nil(t, resp)
		require.Error(t, err)
		require.True(t, IsStatusError(err))

		apiErr := err.(*Error)
		require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		require.Equal(t, "Search", apiErr.Op)
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		c := NewClient(server.URL)
		_, err := c.Search(context.Background(), "anything", 5)
		require.Error(t, err)
		require.False(t, IsStatusError(err))
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.Search(context.Background(), "anything", 5)
		require.Error(t, err)
		require.False(t, IsStatusError(err))
	})
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{
			Status:          "healthy",
			ModelLoaded:     true,
			TokenizerLoaded: true,
			QdrantConnected: true,
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "healthy", resp.Status)
	require.True(t, resp.ModelLoaded)
}

func TestClient_invalidBaseURL(t *testing.T) {
	c := NewClient("://not-a-url")
	_, err := c.Search(context.Background(), "anything", 5)
	require.Error(t, err)
}
