package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ruinlab/ruin/cmd/ruin/commands"
)

func main() {
	// Optional .env for serve defaults (RUIN_SERVE_HOST / RUIN_SERVE_PORT).
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatal("Error loading .env file: ", err)
		}
	}
	commands.Execute()
}
