package main

import (
	"github.com/joho/godotenv"

	"studyrag/internal/cli"
)

func main() {
	// Best effort: API keys may come from a .env next to the binary.
	_ = godotenv.Load()

	cli.Execute()
}
