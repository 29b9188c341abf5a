package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the descriptor in canonical form",
	Long: `Load the descriptor and write it back. Useful after hand edits to
normalize formatting; item order and all fields are preserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		saveCmd := commands.NewSaveCommand(GetStore(), GetRoot())
		message, err := saveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
