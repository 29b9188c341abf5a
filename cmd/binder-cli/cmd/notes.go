package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"binder/internal/adapters/editor"
	"binder/internal/application/commands"
)

var notesCmd = &cobra.Command{
	Use:   "notes [show|set|edit]",
	Short: "Read or replace an item's notes",
	Long: `Read or replace the notes attached to a binder item.

Examples:
  binder-cli notes show chapter-1.txt
  binder-cli notes set chapter-1.txt "needs a stronger opening"
  binder-cli notes edit chapter-1.txt`,
}

var notesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an item's notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notesCmd := commands.NewNotesShowCommand(GetStore(), GetRoot(), args[0])
		notes, err := notesCmd.Execute(ctx)
		if err != nil {
			return err
		}
		if notes != "" {
			fmt.Println(notes)
		}
		return nil
	},
}

var notesSetCmd = &cobra.Command{
	Use:   "set <id> <text>",
	Short: "Replace an item's notes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notesCmd := commands.NewNotesSetCommand(GetStore(), GetRoot(), args[0], args[1])
		result, err := notesCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an item's notes in $EDITOR",
	Long: `Open an item's notes in $EDITOR via a temporary file and commit the
result. An unchanged buffer commits nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		current, err := commands.NewNotesShowCommand(GetStore(), GetRoot(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp("", "binder-notes-*.md")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.WriteString(current); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}

		if err := editor.NewOpener().OpenFile(tmp.Name()); err != nil {
			return err
		}

		edited, err := os.ReadFile(tmp.Name())
		if err != nil {
			return err
		}

		result, err := commands.NewNotesSetCommand(GetStore(), GetRoot(), args[0], string(edited)).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesSetCmd)
	notesCmd.AddCommand(notesEditCmd)
}
