package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/pagecorpus"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching content from: %s\n", c.URL)

	result, err := deps.Scraper.Run(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("scrape %s: %w", c.URL, err)
	}

	if result.FetchErr != nil {
		fmt.Fprintf(deps.Stderr, "Error fetching URL: %s\n", pagecorpus.ErrorMessage(result.FetchErr))
	}

	if !result.Written {
		fmt.Fprintln(deps.Stdout, "Scraping process failed or returned no text.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "\n--- Scraped Data Summary ---")
	fmt.Fprintf(deps.Stdout, "Total characters extracted: %d\n", utf8.RuneCountInString(result.Corpus))

	if c.Preview > 0 {
		fmt.Fprintf(deps.Stdout, "\n--- First %d Characters ---\n", c.Preview)
		fmt.Fprintln(deps.Stdout, pagecorpus.Preview(result.Corpus, c.Preview)+"...")
	}

	fmt.Fprintf(deps.Stdout, "\nData saved to %s\n", result.Path)
	return nil
}
