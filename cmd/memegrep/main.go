package main

import (
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/memegrep/memegrep/internal/app"
	"github.com/memegrep/memegrep/internal/fetch"
	"github.com/memegrep/memegrep/internal/rank"
	"github.com/memegrep/memegrep/internal/search"
)

var (
	cfg        app.Config
	defaults   app.Config
	configPath string
	asJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "memegrep",
	Short: "Look up meme entries on Know Your Meme",
	Long: "memegrep resolves keywords, page slugs, or full detail-page URLs into a\n" +
		"structured meme record (title and about text) scraped from Know Your Meme.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		if strings.TrimSpace(configPath) != "" {
			fc, err := app.LoadConfigFile(configPath)
			if err != nil {
				return eris.Wrap(err, "load config file")
			}
			app.ApplyFileConfig(&cfg, fc, defaults)
		}
		return nil
	},
}

func init() {
	defaults = app.Config{
		SiteURL:    envOr("MEMEGREP_SITE_URL", fetch.DefaultBaseURL),
		SearchURL:  envOr("MEMEGREP_SEARCH_URL", search.DefaultEndpoint),
		SearchFile: os.Getenv("MEMEGREP_SEARCH_FILE"),
		UserAgent:  envOr("MEMEGREP_UA", fetch.DefaultUserAgent),
		MaxResults: 10,
		Threshold:  rank.DefaultThreshold,
		Timeout:    10 * time.Second,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.SiteURL, "site.url", defaults.SiteURL, "Site base URL for detail pages")
	pf.StringVar(&cfg.SearchURL, "search.url", defaults.SearchURL, "Quick-results endpoint URL")
	pf.StringVar(&cfg.SearchFile, "search.file", defaults.SearchFile, "Path to JSON file for offline quick results")
	pf.IntVar(&cfg.MaxResults, "search.len", defaults.MaxResults, "Maximum quick results to consider")
	pf.Float64Var(&cfg.Threshold, "threshold", defaults.Threshold, "Minimum similarity for an accepted match, in [0,1]; 0 accepts the top result")
	pf.StringVar(&cfg.UserAgent, "ua", defaults.UserAgent, "Custom User-Agent for outbound requests")
	pf.DurationVar(&cfg.Timeout, "timeout", defaults.Timeout, "Per-request timeout")
	pf.StringVar(&configPath, "config", os.Getenv("MEMEGREP_CONFIG"), "Path to YAML or JSON config file")
	pf.BoolVar(&asJSON, "json", false, "Print the record as JSON instead of a snippet")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(searchCmd, fetchCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the lookup worked but nothing matched,
		// 1 for every other failure.
		if eris.Is(err, rank.ErrNoConfidentMatch) || eris.Is(err, search.ErrNoResults) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
