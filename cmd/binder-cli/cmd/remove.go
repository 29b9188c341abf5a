package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an item from the binder",
	Long: `Remove an item from the binder structure.

Only the descriptor entry is removed; the backing file stays on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		removeCmd := commands.NewRemoveCommand(GetStore(), GetRoot(), args[0])
		message, err := removeCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
