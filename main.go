package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hyerin/vocadrill/cmd"
)

func main() {
	// Optional .env for VOCADRILL_DB and VOCADRILL_SPEECH overrides.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
