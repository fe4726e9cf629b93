package main

import (
	"github.com/joho/godotenv"

	"github.com/ldevries/atelier/cmd"
)

func main() {
	// Optional .env for local overrides (ATELIER_DATA_FILE etc.)
	_ = godotenv.Load()

	cmd.Execute()
}
