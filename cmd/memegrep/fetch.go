package main

import (
	"github.com/spf13/cobra"

	"github.com/memegrep/memegrep/internal/app"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <slug-or-url>",
	Short: "Fetch a meme entry by its slug or page URL",
	Long: `Fetches a single detail page directly. The argument is taken literally:
either a page slug or a full detail-page URL, never keywords.

Examples:
  memegrep fetch mocking-spongebob
  memegrep fetch https://knowyourmeme.com/memes/mocking-spongebob`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		rec, err := a.Fetch(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printRecord(rec)
	},
}
