package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inkrypt/internal/application"
	"inkrypt/internal/application/commands"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage registered vaults",
	Long: `Create, list, open, rename and delete vaults.

Examples:
  inkrypt vault create journal ~/Documents
  inkrypt vault list
  inkrypt vault open ~/Documents/journal
  inkrypt vault rename <vault-id> diary
  inkrypt vault delete <vault-id>`,
}

var vaultCreateCmd = &cobra.Command{
	Use:   "create <name> <root>",
	Short: "Create a new vault directory inside root",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCreateVaultCommand(manager, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		fmt.Println(mutedStyle.Render(result.Vault.ID.String()))
		return nil
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered vaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewListVaultsCommand(manager).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(result.Vaults) == 0 {
			fmt.Println("No vaults registered")
			return nil
		}
		for _, v := range result.Vaults {
			printVault(v)
		}
		return nil
	},
}

var vaultOpenCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Register an existing vault directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewOpenVaultCommand(manager, watch, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printVault(*result.Vault)
		return nil
	},
}

var vaultRenameCmd = &cobra.Command{
	Use:   "rename <vault-id> <new-name>",
	Short: "Rename a vault directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameVaultCommand(manager, watch, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <vault-id>",
	Short: "Delete a vault and everything inside it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteVaultCommand(manager, watch, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func printVault(v application.Vault) {
	fmt.Printf("%s %s\n", titleStyle.Render(v.Name), mutedStyle.Render(v.ID.String()))
	fmt.Printf("  %s\n", v.Path)
	fmt.Printf("  %s\n", mutedStyle.Render("created "+v.CreatedAt.Local().Format(time.DateTime)))
}

func init() {
	vaultCmd.AddCommand(vaultCreateCmd)
	vaultCmd.AddCommand(vaultListCmd)
	vaultCmd.AddCommand(vaultOpenCmd)
	vaultCmd.AddCommand(vaultRenameCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
	rootCmd.AddCommand(vaultCmd)
}
