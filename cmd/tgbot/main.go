// Package main is the entry point for the tgbot CLI, a thin command-line
// front end over the tgbot client.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd(newApp(os.Stdout, os.Stderr)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
