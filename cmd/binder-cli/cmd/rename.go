package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <filename>",
	Short: "Change an item's backing filename",
	Long: `Change the filename an item points at. The id stays the same, so
references to the item keep working.

The file itself is not moved or renamed on disk.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		renameCmd := commands.NewRenameCommand(GetStore(), GetRoot(), args[0], args[1])
		message, err := renameCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
