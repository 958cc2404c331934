package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.PageService = (*PageService)(nil)

// PageService is a mock implementation of pagemd.PageService.
type PageService struct {
	FetchPageFn  func(ctx context.Context, req pagemd.FetchRequest) (string, error)
	FetchPagesFn func(ctx context.Context, urls []string, opts pagemd.FetchOptions) []pagemd.BatchItem
}

func (s *PageService) FetchPage(ctx context.Context, req pagemd.FetchRequest) (string, error) {
	return s.FetchPageFn(ctx, req)
}

func (s *PageService) FetchPages(ctx context.Context, urls []string, opts pagemd.FetchOptions) []pagemd.BatchItem {
	return s.FetchPagesFn(ctx, urls, opts)
}
