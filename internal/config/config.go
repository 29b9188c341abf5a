package config

import "os"

const DefaultDescriptorName = ".binder.toml"

// DescriptorName returns the descriptor file name from the BINDER_FILE
// env var, falling back to DefaultDescriptorName.
func DescriptorName() string {
	if env := os.Getenv("BINDER_FILE"); env != "" {
		return env
	}
	return DefaultDescriptorName
}

// Root returns the project root from the BINDER_ROOT env var,
// falling back to the current directory.
func Root() string {
	if env := os.Getenv("BINDER_ROOT"); env != "" {
		return env
	}
	return "."
}
