package main

import (
	"os"

	"github.com/finsim/finsim/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env supplies FINSIM_DATA / FINSIM_INFLATION_DATA defaults.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
