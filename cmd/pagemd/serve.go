package main

import (
	"github.com/fwojciec/pagemd/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("serving fetch_url and fetch_urls over stdio")
	return mcp.NewServer(deps.Service).Run(deps.Ctx)
}
