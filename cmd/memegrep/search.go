package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memegrep/memegrep/internal/app"
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords>...",
	Short: "Resolve keywords to the closest meme entry",
	Long: `Queries the site's quick-results backend with the given keywords, scores
each result against the query, and fetches the best match.

Examples:
  # Plain snippet output
  memegrep search all your base

  # Structured output
  memegrep search --json mocking spongebob

  # Accept whatever the backend ranks first
  memegrep search --threshold 0 distracted boyfriend`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		rec, err := a.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printRecord(rec)
	},
}

func printRecord(rec app.Record) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	fmt.Println(rec.Snippet())
	return nil
}
