// cmd/metro-fourier/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"metro/internal/fourierapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := fourierapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
