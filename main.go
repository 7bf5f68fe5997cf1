package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	gateway := app.New()
	<-gateway.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := gateway.Stop(ctx); err != nil {
		os.Exit(1)
	}
}
