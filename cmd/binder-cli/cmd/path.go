package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var pathCmd = &cobra.Command{
	Use:   "path <id>",
	Short: "Print the absolute path of an item's backing file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		pathCmd := commands.NewPathCommand(GetStore(), GetRoot(), args[0])
		path, err := pathCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
