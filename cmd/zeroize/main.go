package main

import (
	"os"

	"zeroize/cmd/zeroize/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
