// Command smoke exercises a running server end to end: the auth chain,
// pagination clamping, record creation, and category search. It exits
// non-zero when any check fails, which makes it usable as a deploy gate.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hansik/baedal/internal/smoke"
	"github.com/hansik/baedal/pkg/logger"
)

func main() {
	var (
		addr    = flag.String("addr", "http://localhost:8000", "base URL of the server under test")
		timeout = flag.Duration("timeout", 10*time.Second, "per-request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	log := logger.Named("smoke-cli")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := smoke.Config{
		BaseURL: *addr,
		Timeout: *timeout,
	}
	if err := smoke.Run(ctx, cfg); err != nil {
		log.Error(ctx, "smoke run failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
