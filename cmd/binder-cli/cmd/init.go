package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"binder/internal/application/commands"
)

var initDefaultMode string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty binder descriptor",
	Long: `Create an empty binder descriptor in the project directory.

Unlike the other commands, init does not search ancestor directories;
the descriptor is created exactly where --root points.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		initCmd := commands.NewInitCommand(GetStore(), GetRoot())
		initCmd.DefaultMode = initDefaultMode
		message, err := initCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initDefaultMode, "default-mode", "", "default presentation mode recorded in the descriptor")
}
