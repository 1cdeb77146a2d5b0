package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"inkrypt/internal/adapters/sqlite"
	"inkrypt/internal/application"
	"inkrypt/internal/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch <vault-id>",
	Short: "Print changes made to a vault by other programs",
	Long: `Watch a vault and print each batch of external changes until interrupted.
The vault's search index is kept up to date while watching.

Example:
  inkrypt watch <vault-id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := application.ParseVaultID("vaultID", args[0])
		if err != nil {
			return err
		}
		vault, err := manager.GetVault(id)
		if err != nil {
			return err
		}

		if err := index.Open(vault.ID, vault.Path); err != nil {
			return fmt.Errorf("failed to open index: %w", err)
		}
		if _, err := index.SyncIncremental(); err != nil {
			return fmt.Errorf("failed to sync index: %w", err)
		}

		cancel := watch.Subscribe(func(batch []domain.FileSystemEvent) {
			if err := index.Apply(batch); err != nil && !errors.Is(err, sqlite.ErrNotOpen) {
				log.Warn().Err(err).Msg("failed to update index")
			}
			printBatch(batch)
		})
		defer cancel()

		if err := watch.Watch(vault.ID, vault.Path); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println(titleStyle.Render("Watching " + vault.Name))
		fmt.Println(mutedStyle.Render(vault.Path + "  (Ctrl+C to stop)"))
		<-ctx.Done()

		watch.Unwatch(vault.ID)
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return ctx.Err()
	},
}

func printBatch(batch []domain.FileSystemEvent) {
	stamp := mutedStyle.Render(time.Now().Format(time.TimeOnly))
	for _, e := range batch {
		kind := string(e.EventType)
		style, ok := eventStyles[kind]
		if ok {
			kind = style.Render(fmt.Sprintf("%-6s", kind))
		}
		path := e.Path
		if path == "" {
			path = "/"
		}
		fmt.Printf("%s %s %s\n", stamp, kind, path)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
