package main

import "binder/cmd/binder-cli/cmd"

func main() {
	cmd.Execute()
}
