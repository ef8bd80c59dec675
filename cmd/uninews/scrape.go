package main

import (
	"fmt"

	"github.com/fwojciec/uninews"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	p, err := newPersister(deps, &c.ScrapeOptions)
	if err != nil {
		return err
	}
	defer p.Close()

	article := deps.Scraper.Scrape(deps.Ctx, c.URL, c.Language)

	if err := p.persist(deps, c.URL, article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uninews.ErrorMessage(err))
	}

	return printArticle(deps.Stdout, article, c.JSON)
}
