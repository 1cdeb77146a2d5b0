package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"inkrypt/internal/adapters/editor"
	"inkrypt/internal/application"
	"inkrypt/internal/application/commands"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Work with notes and directories inside a vault",
	Long: `List, read, write, create, move and delete entries in a vault.
Paths are relative to the vault root and use '/' separators.

Examples:
  inkrypt entry ls <vault-id>
  inkrypt entry ls <vault-id> projects
  inkrypt entry cat <vault-id> projects/plan.md
  echo "# Plan" | inkrypt entry write <vault-id> projects/plan.md
  inkrypt entry mv <vault-id> projects/plan.md archive/plan.md`,
}

var entryListCmd = &cobra.Command{
	Use:   "ls <vault-id> [dir]",
	Short: "List a directory",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 2 {
			dir = args[1]
		}

		result, err := commands.NewListEntriesCommand(manager, args[0], dir).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, e := range result.Entries {
			printEntry(e)
		}
		return nil
	},
}

var entryCatCmd = &cobra.Command{
	Use:   "cat <vault-id> <path>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewReadNoteCommand(manager, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(result.Content)
		return nil
	},
}

var writeContent string

var entryWriteCmd = &cobra.Command{
	Use:   "write <vault-id> <path>",
	Short: "Replace a note's content with --content or stdin",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := writeContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			content = string(data)
		}

		result, err := commands.NewEditNoteCommand(manager, watch, args[0], args[1], content).Execute(cmd.Context())
		return report(result, err)
	},
}

var entryEditCmd = &cobra.Command{
	Use:   "edit <vault-id> <path>",
	Short: "Open a note in $VISUAL or $EDITOR, creating it if needed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := commands.NewCreateNoteCommand(manager, watch, args[0], args[1]).Execute(cmd.Context())
		if err != nil && !errors.Is(err, application.ErrAlreadyExists) {
			return err
		}

		id, err := application.ParseVaultID("vaultID", args[0])
		if err != nil {
			return err
		}
		path, err := manager.ResolveEntryPath(id, args[1])
		if err != nil {
			return err
		}
		return editor.NewOpener().OpenFile(path)
	},
}

var entryTouchCmd = &cobra.Command{
	Use:   "touch <vault-id> <path>",
	Short: "Create an empty note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(commands.NewCreateNoteCommand(manager, watch, args[0], args[1]).Execute(cmd.Context()))
	},
}

var entryMkdirCmd = &cobra.Command{
	Use:   "mkdir <vault-id> <path>",
	Short: "Create a directory and any missing parents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(commands.NewCreateDirectoryCommand(manager, watch, args[0], args[1]).Execute(cmd.Context()))
	},
}

var entryRemoveCmd = &cobra.Command{
	Use:   "rm <vault-id> <path>",
	Short: "Delete a note or a directory tree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(commands.NewDeleteEntryCommand(manager, watch, args[0], args[1]).Execute(cmd.Context()))
	},
}

var entryMoveCmd = &cobra.Command{
	Use:   "mv <vault-id> <old-path> <new-path>",
	Short: "Move or rename an entry",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(commands.NewRenameEntryCommand(manager, watch, args[0], args[1], args[2]).Execute(cmd.Context()))
	},
}

func report(result *commands.EntryResult, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render(result.Message))
	return nil
}

func printEntry(e application.Entry) {
	updated := ""
	if e.UpdatedAt != nil {
		updated = e.UpdatedAt.Local().Format("2006-01-02 15:04")
	}

	name := noteStyle.Render(e.Name)
	if e.IsDir() {
		name = directoryStyle.Render(e.Name + "/")
	}
	fmt.Printf("%s  %s\n", mutedStyle.Render(fmt.Sprintf("%-16s", updated)), name)
}

func init() {
	entryWriteCmd.Flags().StringVar(&writeContent, "content", "", "note content (default: read stdin)")

	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryCatCmd)
	entryCmd.AddCommand(entryWriteCmd)
	entryCmd.AddCommand(entryEditCmd)
	entryCmd.AddCommand(entryTouchCmd)
	entryCmd.AddCommand(entryMkdirCmd)
	entryCmd.AddCommand(entryRemoveCmd)
	entryCmd.AddCommand(entryMoveCmd)
	rootCmd.AddCommand(entryCmd)
}
