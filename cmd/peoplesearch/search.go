package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"linkedin-people-search/internal/browser"
	"linkedin-people-search/internal/config"
	"linkedin-people-search/internal/crawler"
	"linkedin-people-search/internal/export"
	"linkedin-people-search/internal/logging"
	"linkedin-people-search/internal/models"
	"linkedin-people-search/internal/orchestrator"
	"linkedin-people-search/internal/storage"
	"linkedin-people-search/internal/utils"
)

type searchOptions struct {
	detailed bool
	format   string
	htmlPath string
	headful  bool
}

func newSearchCmd(configPath *string) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search TERM...",
		Short: "Search people for each term and print the first results page",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, *configPath, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.detailed, "detailed", "d", false, "extract name, headline, location and connection degree")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or csv")
	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "read a saved results page instead of starting Chrome")
	cmd.Flags().BoolVar(&opts.headful, "headful", false, "show the browser window")

	return cmd
}

func runSearch(cmd *cobra.Command, configPath string, opts searchOptions, terms []string) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.headful {
		cfg.Headless = false
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, stop := utils.SetupSignalHandling(cmd.Context(), func(sig os.Signal) {
		fmt.Fprintf(os.Stderr, "\n⚠️ Received %v, shutting down...\n", sig)
	})
	defer stop()

	mode := models.SearchModeLinks
	if opts.detailed {
		mode = models.SearchModeDetailed
	}

	fmt.Fprintln(os.Stderr, "🚀 People search")
	fmt.Fprintln(os.Stderr, strings.Repeat("=", 60))

	session, err := openSession(ctx, cfg, opts.htmlPath, log)
	if err != nil {
		return err
	}

	var journal crawler.Journal
	if cfg.JournalPath != "" {
		j, err := storage.OpenJournal(cfg.JournalPath)
		if err != nil {
			session.Close()
			return err
		}
		defer j.Close()
		journal = j
	}

	c, err := crawler.New(cfg, session, journal, log)
	if err != nil {
		session.Close()
		return err
	}

	scraper := orchestrator.NewFromCrawler(cfg, c, log)
	runs, err := scraper.RunTerms(ctx, terms, mode, true)
	if errors.Is(err, orchestrator.ErrNotImplemented) {
		return fmt.Errorf("%w: sign in through the configured Chrome profile or session cookie first", err)
	}
	if err != nil && len(runs) == 0 {
		return err
	}

	if werr := export.Write(cmd.OutOrStdout(), format, mode, runs); werr != nil {
		return fmt.Errorf("failed to write results: %w", werr)
	}

	sum := orchestrator.Summarize(runs)
	fmt.Fprintln(os.Stderr, strings.Repeat("=", 60))
	fmt.Fprintf(os.Stderr, "🎉 %d terms in %s: %d results, %d cards skipped, %d duplicates, %d failed\n",
		sum.Terms, utils.FormatDuration(sum.Duration), sum.Results, sum.Skipped, sum.Duplicates, sum.Failed)
	if cfg.JournalPath != "" {
		fmt.Fprintf(os.Stderr, "💾 Journal: %s\n", cfg.JournalPath)
	}

	return err
}

func openSession(ctx context.Context, cfg models.Config, htmlPath string, log logrus.FieldLogger) (browser.Session, error) {
	if htmlPath != "" {
		return browser.OpenStatic(htmlPath)
	}
	return browser.NewChrome(ctx, cfg, log)
}
