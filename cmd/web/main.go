// Command web serves the judgment records frontend. It runs until it
// receives SIGINT or SIGTERM, then drains in-flight requests.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/judgment-web/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("web: %v", err)
		os.Exit(1)
	}
}
