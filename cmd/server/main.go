// Package main implements the entry point for the dad joke HTTP server,
// which personalizes jokes from icanhazdadjoke.com with Gemini.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}
