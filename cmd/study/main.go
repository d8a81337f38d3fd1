// Command study is the terminal flashcard viewer. It asks a flashdeck server
// for a deck about a topic and lets the learner flip and page through it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "study: %v\n", err)
		stop()
		os.Exit(1)
	}
}
