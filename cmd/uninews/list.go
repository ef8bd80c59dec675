package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/sqlite"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	archive := deps.Archive
	if archive == nil {
		db := sqlite.NewDB(c.Archive)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open archive at %q: %w", c.Archive, err)
		}
		defer db.Close()
		archive = sqlite.NewArchiveService(db)
	}

	entries, err := archive.ListArticles(deps.Ctx, c.Limit, c.Offset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uninews.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived articles.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.ScrapedAt.Format("2006-01-02"), e.URL, e.Title)
	}

	return nil
}
