// Package mcp exposes the fetch pipeline as tools over the Model Context
// Protocol, for consumption by an orchestrating agent.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pagemd"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "pagemd"
	serverVersion = "1.0.0"
)

// fetchURLInput is the fetch_url tool parameter schema.
type fetchURLInput struct {
	URL             string `json:"url" jsonschema:"the URL to fetch"`
	IncludeMetadata bool   `json:"includeMetadata,omitempty" jsonschema:"prepend extracted page metadata as a front-matter block (default false)"`
	Simplify        *bool  `json:"simplify,omitempty" jsonschema:"extract the main readable content before converting (default true)"`
	Timeout         int    `json:"timeout,omitempty" jsonschema:"fetch timeout in milliseconds (default 30000)"`
}

// fetchURLsInput is the fetch_urls tool parameter schema.
type fetchURLsInput struct {
	URLs            []string `json:"urls" jsonschema:"the URLs to fetch, processed sequentially in order"`
	IncludeMetadata bool     `json:"includeMetadata,omitempty" jsonschema:"prepend extracted page metadata as a front-matter block (default false)"`
	Simplify        *bool    `json:"simplify,omitempty" jsonschema:"extract the main readable content before converting (default true)"`
	Timeout         int      `json:"timeout,omitempty" jsonschema:"fetch timeout in milliseconds per URL (default 30000)"`
}

// Server serves the fetch_url and fetch_urls tools.
type Server struct {
	service pagemd.PageService
	server  *mcp.Server
}

// NewServer creates a new Server backed by the given page service.
func NewServer(service pagemd.PageService) *Server {
	s := &Server{service: service}

	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "fetch_url",
		Description: "Fetch a URL and return its content converted to markdown",
	}, s.fetchURL)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "fetch_urls",
		Description: "Fetch multiple URLs sequentially and return a combined markdown report",
	}, s.fetchURLs)
	s.server = srv

	return s
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) fetchURL(ctx context.Context, _ *mcp.CallToolRequest, in fetchURLInput) (*mcp.CallToolResult, any, error) {
	text, err := s.service.FetchPage(ctx, requestFor(in.URL, in.IncludeMetadata, in.Simplify, in.Timeout))
	if err != nil {
		return errorResult(fmt.Sprintf("Error fetching %s: %s", in.URL, pagemd.ErrorMessage(err))), nil, nil
	}
	return textResult(text), nil, nil
}

func (s *Server) fetchURLs(ctx context.Context, _ *mcp.CallToolRequest, in fetchURLsInput) (*mcp.CallToolResult, any, error) {
	if len(in.URLs) == 0 {
		return errorResult("Error: urls must contain at least one URL"), nil, nil
	}

	opts := pagemd.FetchOptions{
		IncludeMetadata: in.IncludeMetadata,
		Simplify:        simplifyValue(in.Simplify),
		Timeout:         timeoutValue(in.Timeout),
	}
	items := s.service.FetchPages(ctx, in.URLs, opts)

	// Per-URL failures are embedded in the report; the tool call itself
	// always succeeds.
	return textResult(pagemd.FormatReport(items)), nil, nil
}

func requestFor(url string, includeMetadata bool, simplify *bool, timeoutMS int) pagemd.FetchRequest {
	return pagemd.FetchRequest{
		URL:             url,
		IncludeMetadata: includeMetadata,
		Simplify:        simplifyValue(simplify),
		Timeout:         timeoutValue(timeoutMS),
	}
}

// simplifyValue applies the protocol default: simplify is on unless the
// caller disabled it explicitly.
func simplifyValue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func timeoutValue(ms int) time.Duration {
	if ms <= 0 {
		return pagemd.DefaultTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}
