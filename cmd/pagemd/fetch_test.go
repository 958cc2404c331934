package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemd"
	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdFetch(t *testing.T) {
	t.Parallel()

	t.Run("prints markdown for a single URL", func(t *testing.T) {
		t.Parallel()

		var gotReq pagemd.FetchRequest
		m := main.NewMain()
		m.Service = &mock.PageService{
			FetchPageFn: func(ctx context.Context, req pagemd.FetchRequest) (string, error) {
				gotReq = req
				return "# Hello", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"fetch", "https://example.com"}, stdout, stderr)
		require.NoError(t, err)

		assert.Equal(t, "# Hello\n", stdout.String())
		assert.Equal(t, "https://example.com", gotReq.URL)
		assert.True(t, gotReq.Simplify)
		assert.False(t, gotReq.IncludeMetadata)
		assert.Equal(t, 30*time.Second, gotReq.Timeout)
	})

	t.Run("flags adjust the request", func(t *testing.T) {
		t.Parallel()

		var gotReq pagemd.FetchRequest
		m := main.NewMain()
		m.Service = &mock.PageService{
			FetchPageFn: func(ctx context.Context, req pagemd.FetchRequest) (string, error) {
				gotReq = req
				return "ok", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"fetch", "--metadata", "--no-simplify", "--timeout", "5s", "https://example.com"}, stdout, stderr)
		require.NoError(t, err)

		assert.True(t, gotReq.IncludeMetadata)
		assert.False(t, gotReq.Simplify)
		assert.Equal(t, 5*time.Second, gotReq.Timeout)
	})

	t.Run("reports fetch errors on stderr", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PageService{
			FetchPageFn: func(ctx context.Context, req pagemd.FetchRequest) (string, error) {
				return "", pagemd.Errorf(pagemd.EUNAVAILABLE, "HTTP 404: Not Found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"fetch", "https://example.com/missing"}, stdout, stderr)
		require.Error(t, err)

		assert.Empty(t, stdout.String())
		assert.Equal(t, "Error fetching https://example.com/missing: HTTP 404: Not Found\n", stderr.String())
	})

	t.Run("multiple URLs produce a combined report", func(t *testing.T) {
		t.Parallel()

		var gotURLs []string
		m := main.NewMain()
		m.Service = &mock.PageService{
			FetchPagesFn: func(ctx context.Context, urls []string, opts pagemd.FetchOptions) []pagemd.BatchItem {
				gotURLs = urls
				return []pagemd.BatchItem{
					{URL: urls[0], Markdown: "# One"},
					{URL: urls[1], Err: pagemd.Errorf(pagemd.EUNAVAILABLE, "HTTP 500: Internal Server Error")},
				}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"fetch", "https://a.example.com", "https://b.example.com"}, stdout, stderr)
		require.NoError(t, err)

		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, gotURLs)
		out := stdout.String()
		assert.Contains(t, out, "# Fetch Results")
		assert.Contains(t, out, "## https://a.example.com")
		assert.Contains(t, out, "# One")
		assert.Contains(t, out, "**Error:** HTTP 500: Internal Server Error")
	})

	t.Run("requires at least one URL", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Service = &mock.PageService{}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"fetch"}, stdout, stderr)
		require.Error(t, err)
	})
}
