package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/orggraph-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}

	runErr := a.Run(ctx)
	if runErr != nil {
		a.Log.Error("server exited", "error", runErr)
	} else {
		a.Log.Info("server stopped")
	}
	a.Close()
	if runErr != nil {
		os.Exit(1)
	}
}
