package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"binder/internal/adapters/descriptor"
	"binder/internal/config"
	"binder/internal/ports"
)

var (
	rootDir    string
	store      ports.BinderStore
	binderRoot string
)

var rootCmd = &cobra.Command{
	Use:   "binder-cli",
	Short: "CLI for managing ordered project binders",
	Long: `binder-cli is a command-line interface for managing a binder: an
ordered set of project files with per-item notes and tags, persisted
in a human-readable descriptor at the project root.

It provides commands to list, add, remove, reorder, rename, tag,
annotate, and compose the items of a binder.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for commands that run without a descriptor
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = descriptor.NewStore(config.DescriptorName(), stdinConfirmer{})
		if cmd.Name() == "init" {
			binderRoot = rootDir
			return nil
		}
		located, err := store.Locate(rootDir)
		if err != nil {
			return err
		}
		binderRoot = located
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", config.Root(), "project directory to search from")
}

// GetStore returns the initialized descriptor store
func GetStore() ports.BinderStore {
	return store
}

// GetRoot returns the located project root
func GetRoot() string {
	return binderRoot
}

// stdinConfirmer asks yes/no questions on the terminal
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
