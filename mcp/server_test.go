package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/mock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestServer_FetchURL(t *testing.T) {
	t.Parallel()

	t.Run("returns markdown on success", func(t *testing.T) {
		t.Parallel()

		var got pagemd.FetchRequest
		srv := NewServer(&mock.PageService{
			FetchPageFn: func(ctx context.Context, req pagemd.FetchRequest) (string, error) {
				got = req
				return "# Hello", nil
			},
		})

		res, _, err := srv.fetchURL(context.Background(), nil, fetchURLInput{URL: "https://example.com/a"})

		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, "# Hello", resultText(t, res))
		// Protocol defaults applied.
		assert.True(t, got.Simplify)
		assert.False(t, got.IncludeMetadata)
		assert.Equal(t, pagemd.DefaultTimeout, got.Timeout)
	})

	t.Run("honors explicit parameters", func(t *testing.T) {
		t.Parallel()

		var got pagemd.FetchRequest
		srv := NewServer(&mock.PageService{
			FetchPageFn: func(ctx context.Context, req pagemd.FetchRequest) (string, error) {
				got = req
				return "ok", nil
			},
		})

		off := false
		_, _, err := srv.fetchURL(context.Background(), nil, fetchURLInput{
			URL:             "https://example.com/a",
			IncludeMetadata: true,
			Simplify:        &off,
			Timeout:         5000,
		})

		require.NoError(t, err)
		assert.False(t, got.Simplify)
		assert.True(t, got.IncludeMetadata)
		assert.Equal(t, 5*time.Second, got.Timeout)
	})

	t.Run("flags failures with the error envelope", func(t *testing.T) {
		t.Parallel()

		srv := NewServer(&mock.PageService{
			FetchPageFn: func(ctx context.Context, req pagemd.FetchRequest) (string, error) {
				return "", pagemd.Errorf(pagemd.EUNAVAILABLE, "HTTP 404: Not Found")
			},
		})

		res, _, err := srv.fetchURL(context.Background(), nil, fetchURLInput{URL: "https://example.com/a"})

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "Error fetching https://example.com/a: HTTP 404: Not Found", resultText(t, res))
	})
}

func TestServer_FetchURLs(t *testing.T) {
	t.Parallel()

	t.Run("returns the combined report even with per-URL failures", func(t *testing.T) {
		t.Parallel()

		srv := NewServer(&mock.PageService{
			FetchPagesFn: func(ctx context.Context, urls []string, opts pagemd.FetchOptions) []pagemd.BatchItem {
				return []pagemd.BatchItem{
					{URL: urls[0], Markdown: "# A"},
					{URL: urls[1], Err: pagemd.Errorf(pagemd.ETIMEOUT, "request for %s timed out", urls[1])},
				}
			},
		})

		res, _, err := srv.fetchURLs(context.Background(), nil, fetchURLsInput{
			URLs: []string{"https://a.example.com", "https://b.example.com"},
		})

		require.NoError(t, err)
		assert.False(t, res.IsError)
		text := resultText(t, res)
		assert.Contains(t, text, "# Fetch Results")
		assert.Contains(t, text, "## https://a.example.com")
		assert.Contains(t, text, "**Error:** request for https://b.example.com timed out")
	})

	t.Run("rejects an empty URL list", func(t *testing.T) {
		t.Parallel()

		srv := NewServer(&mock.PageService{})

		res, _, err := srv.fetchURLs(context.Background(), nil, fetchURLsInput{})

		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
