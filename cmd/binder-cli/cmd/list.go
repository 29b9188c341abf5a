package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var (
	listTag   string
	listNoExt bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the binder structure in reading order",
	Long: `List the binder structure in reading order, one line per item.

Each line carries a status glyph: "?" when the backing file is
missing, "≡" when the item has notes.

Examples:
  binder-cli list
  binder-cli list --tag draft
  binder-cli list --no-ext`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListCommand(GetStore(), GetRoot())
		listCmd.Tag = listTag
		listCmd.NoExt = listNoExt
		listing, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, line := range listing.Lines {
			fmt.Printf("%s %s\n", line.Status.Glyph(), line.Display)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "only show items carrying this tag")
	listCmd.Flags().BoolVar(&listNoExt, "no-ext", false, "hide file extensions")
}
