package main

import (
	"github.com/joho/godotenv"

	"video-archivist/cmd/archivist/cmd"
)

func main() {
	// Secrets come from the local environment file; a missing .env is
	// fine as long as the variables are set some other way.
	_ = godotenv.Load()

	cmd.Execute()
}
