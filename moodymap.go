package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/moodymap/pkg/commands"
)

func main() {
	// MOODYMAP_* settings may come from a local .env file.
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
