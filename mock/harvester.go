package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.Harvester = (*Harvester)(nil)

// Harvester is a mock implementation of pagemd.Harvester.
type Harvester struct {
	HarvestFn func(html string) (*pagemd.Metadata, error)
}

func (h *Harvester) Harvest(html string) (*pagemd.Metadata, error) {
	return h.HarvestFn(html)
}
