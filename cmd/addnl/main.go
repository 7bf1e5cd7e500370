package main

import (
	"fmt"
	"os"

	"github.com/harrison/addnl/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Errors go to stdout alongside the per-file notices
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}
