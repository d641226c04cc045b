// Command server runs the English learning backend HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/minhngo/englishpal-backend/internal/app"
)

func main() {
	// A missing .env file is fine; real environment variables take over.
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
