package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var composeSeparator string

var composeCmd = &cobra.Command{
	Use:   "compose <id>...",
	Short: "Concatenate item contents in the given order",
	Long: `Concatenate the backing files of the given items, in argument
order, and print the result. Each file is followed by the separator.

Composition is all-or-nothing: an unknown id or unreadable file
aborts with an error and prints nothing.

Examples:
  binder-cli compose chapter-1.txt chapter-2.txt
  binder-cli compose intro outline --separator "\n---\n"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		composeCmd := commands.NewComposeCommand(GetStore(), GetRoot(), args, composeSeparator)
		content, err := composeCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(composeCmd)
	composeCmd.Flags().StringVar(&composeSeparator, "separator", commands.DefaultSeparator, "text appended after each file")
}
