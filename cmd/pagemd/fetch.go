package main

import (
	"fmt"

	"github.com/fwojciec/pagemd"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	opts := pagemd.FetchOptions{
		IncludeMetadata: c.Metadata,
		Simplify:        !c.NoSimplify,
		Timeout:         c.Timeout,
	}

	if len(c.URLs) == 1 {
		markdown, err := deps.Service.FetchPage(deps.Ctx, opts.Request(c.URLs[0]))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "Error fetching %s: %s\n", c.URLs[0], pagemd.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	items := deps.Service.FetchPages(deps.Ctx, c.URLs, opts)
	fmt.Fprint(deps.Stdout, pagemd.FormatReport(items))
	return nil
}
