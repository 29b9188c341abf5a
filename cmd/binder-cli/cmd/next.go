package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
	"binder/internal/domain"
)

var nextCmd = &cobra.Command{
	Use:   "next <id> [n]",
	Short: "Print the item n positions after the given one",
	Long: `Print the item n positions after the given one in reading order.
n defaults to 1 and may be negative to step backwards.

Examples:
  binder-cli next chapter-1.txt
  binder-cli next chapter-3.txt -2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("n must be an integer, got: %s", args[1])
			}
			n = parsed
		}

		ctx := context.Background()
		nextCmd := commands.NewNextCommand(GetStore(), GetRoot(), args[0], n)
		it, err := nextCmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrBoundary) {
				fmt.Println("No item at that position")
				return nil
			}
			return err
		}
		fmt.Printf("%s %s\n", it.ID, it.Filename)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
