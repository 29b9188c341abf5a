package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var tagCmd = &cobra.Command{
	Use:   "tag [add|rm|list]",
	Short: "Manage item tags",
	Long: `Manage the tags attached to binder items.

Examples:
  binder-cli tag add chapter-1.txt draft
  binder-cli tag rm chapter-1.txt draft
  binder-cli tag list`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <id> <tag>",
	Short: "Attach a tag to an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tagCmd := commands.NewTagAddCommand(GetStore(), GetRoot(), args[0], args[1])
		message, err := tagCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "rm <id> <tag>",
	Short: "Detach a tag from an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tagCmd := commands.NewTagRemoveCommand(GetStore(), GetRoot(), args[0], args[1])
		message, err := tagCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tag in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tagCmd := commands.NewTagListCommand(GetStore(), GetRoot())
		tags, err := tagCmd.Execute(ctx)
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagListCmd)
}
