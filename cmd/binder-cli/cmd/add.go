package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var (
	addID   string
	addTags []string
)

var addCmd = &cobra.Command{
	Use:   "add <filename>",
	Short: "Add an item to the end of the binder",
	Long: `Add an item to the end of the binder structure.

The filename is relative to the project root. The id defaults to the
filename when not given.

Examples:
  binder-cli add chapter-3.txt
  binder-cli add notes/outline.md --id outline --tag planning`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		addCmd := commands.NewAddCommand(GetStore(), GetRoot(), addID, args[0])
		addCmd.Tags = addTags
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addID, "id", "", "item id (defaults to the filename)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag to attach (repeatable)")
}
