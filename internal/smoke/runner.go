package smoke

import (
	"context"
	"fmt"
	"time"

	"github.com/hansik/baedal/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Config controls a smoke run.
type Config struct {
	// BaseURL is the root of the server under test, e.g. http://localhost:8000.
	BaseURL string
	// Timeout bounds each individual HTTP request.
	Timeout time.Duration
}

// Run executes every check against the server at cfg.BaseURL and returns
// an error naming the failed checks, or nil when all pass. Checks keep
// running after a failure so one report covers the whole surface.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	log := logger.Named("smoke")
	c := newClient(cfg.BaseURL, cfg.Timeout)

	var failed int
	for _, chk := range checks {
		start := time.Now()
		err := chk.run(ctx, c)
		elapsed := time.Since(start)
		if err != nil {
			failed++
			log.Error(ctx, "check failed",
				logger.String("check", chk.name),
				logger.Error(err),
				logger.String("elapsed", elapsed.String()))
			continue
		}
		log.Info(ctx, "check passed",
			logger.String("check", chk.name),
			logger.String("elapsed", elapsed.String()))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	log.Info(ctx, "all checks passed", logger.Int("checks", len(checks)))
	return nil
}
