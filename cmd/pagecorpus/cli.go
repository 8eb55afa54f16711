package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/pagecorpus/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" default:"${default_output}" env:"PAGECORPUS_OUTPUT" help:"File the corpus is written to"`
	Timeout   time.Duration `short:"t" default:"${default_timeout}" env:"PAGECORPUS_TIMEOUT" help:"Fetch timeout"`
	MinLength int           `name:"min-length" default:"${default_min_length}" help:"Keep only text blocks longer than this many characters"`
	Preview   int           `default:"1000" help:"Characters of the corpus to print after a successful run"`
	Verbose   bool          `short:"v" help:"Log pipeline stages to stderr"`
	URL       string        `arg:"" optional:"" default:"${default_url}" help:"Page to extract"`
}

// Validate rejects flag values the pipeline cannot honour. Kong calls it
// after parsing.
func (c *CLI) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MinLength < 0 {
		return fmt.Errorf("min-length must not be negative, got %d", c.MinLength)
	}
	if c.Preview < 0 {
		return fmt.Errorf("preview must not be negative, got %d", c.Preview)
	}
	return nil
}

// ScrapeCmd handles the scrape operation.
type ScrapeCmd struct {
	URL     string
	Preview int
}
