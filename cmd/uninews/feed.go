package main

import (
	"fmt"

	"github.com/fwojciec/uninews"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	urls, err := deps.Feeds.ArticleURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uninews.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No article links found.")
		return nil
	}

	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}

	return runBatch(deps, &c.ScrapeOptions, &c.BatchOptions, urls)
}
