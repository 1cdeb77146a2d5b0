package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkrypt/internal/application"
	"inkrypt/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <vault-id> <query>",
	Short: "Search entry names in a vault",
	Long: `Search for notes and directories whose name contains the query,
ignoring case. Directories are listed first.

The vault's index is brought up to date before searching.

Examples:
  inkrypt search <vault-id> plan
  inkrypt search <vault-id> 2026 --limit 10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		search := commands.NewSearchNotesCommand(manager, index, args[0], args[1], searchLimit)
		result, err := search.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(result.Hits) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, h := range result.Hits {
			if h.EntryType == application.EntryTypeDirectory {
				fmt.Println(directoryStyle.Render(h.Path + "/"))
				continue
			}
			fmt.Println(noteStyle.Render(h.Path))
		}
		fmt.Println(mutedStyle.Render(result.Message))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, fmt.Sprintf("maximum number of results (default %d)", commands.DefaultSearchLimit))
	rootCmd.AddCommand(searchCmd)
}
