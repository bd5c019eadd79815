package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/clauselens/clauselens/internal/cli"
)

func main() {
	// Load .env if present; environment variables already set win.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
