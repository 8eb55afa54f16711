package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecorpus"
	"github.com/fwojciec/pagecorpus/fs"
	"github.com/fwojciec/pagecorpus/goquery"
	pchttp "github.com/fwojciec/pagecorpus/http"
	"github.com/fwojciec/pagecorpus/scrape"
	pcslog "github.com/fwojciec/pagecorpus/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	// Set when kong would exit, e.g. after printing help.
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("pagecorpus"),
		kong.Description("Extract the visible text of a web page into a corpus file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{
			"default_url":        scrape.DefaultURL,
			"default_output":     fs.DefaultPath,
			"default_timeout":    pchttp.DefaultFetchTimeout.String(),
			"default_min_length": strconv.Itoa(pagecorpus.DefaultMinFragmentLength),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	logger = logger.With("run", uuid.New().String())

	// Wire dependencies
	fetcher := pchttp.NewFetcher(pchttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scraper: &scrape.Scraper{
			Fetcher:   pcslog.NewLoggingFetcher(fetcher, logger),
			Extractor: pcslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithMinLength(cli.MinLength)), logger),
			Writer:    pcslog.NewLoggingWriter(fs.NewWriter(cli.Output), logger),
			Logger:    logger,
		},
	}

	cmd := &ScrapeCmd{
		URL:     cli.URL,
		Preview: cli.Preview,
	}

	return cmd.Run(deps)
}
