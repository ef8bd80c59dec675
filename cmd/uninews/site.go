package main

import (
	"fmt"

	"github.com/fwojciec/uninews"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uninews.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found in sitemap.")
		return nil
	}

	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}

	return runBatch(deps, &c.ScrapeOptions, &c.BatchOptions, urls)
}
