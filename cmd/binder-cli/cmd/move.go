package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <delta>",
	Short: "Move an item up or down the reading order",
	Long: `Move an item by a relative distance. Negative values move toward
the front, positive toward the back; the item swaps places with the
item at the target position.

A move past either end of the structure is reported and changes
nothing.

Examples:
  binder-cli move chapter-2.txt -1    # swap with the item before it
  binder-cli move outline 3           # move three positions back`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer, got: %s", args[1])
		}

		ctx := context.Background()
		moveCmd := commands.NewMoveCommand(GetStore(), GetRoot(), args[0], delta)
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
