package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/liisbet/viipekeel/cmd"
)

func main() {
	// A .env file can set VIIPEKEEL_DB and friends during development.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
