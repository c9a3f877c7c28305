package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LilLilian59/JeuDeLaVie/internal/control"
	"github.com/LilLilian59/JeuDeLaVie/internal/metrics"
	"github.com/LilLilian59/JeuDeLaVie/pkg/core"
	"github.com/LilLilian59/JeuDeLaVie/pkg/life"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// soupDensity seeds trials when no density was set.
const soupDensity = 0.3

func main() {
	var opts options
	opts.bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &opts, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		if opts.trials > 0 {
			return soup(ctx, cfg, opts, rec, out)
		}
		return simulate(ctx, cfg, opts, rec, out)
	})

	if opts.metricsAddr != "" {
		srv := &http.Server{Addr: opts.metricsAddr, Handler: metrics.Handler(reg)}
		eg.Go(func() error {
			log.Printf("metrics endpoint listening on %s", opts.metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics HTTP server failed: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return eg.Wait()
}

// simulate builds one grid from cfg and the seeding flags and steps it.
func simulate(ctx context.Context, cfg life.Config, opts *options, rec *metrics.Recorder, out io.Writer) error {
	grid, err := cfg.Build()
	if err != nil {
		return err
	}
	intents, err := opts.intents()
	if err != nil {
		return err
	}
	ctrl := control.New(grid, cfg.Density)
	if err := ctrl.ApplyAll(intents); err != nil {
		return err
	}
	rec.Sample(grid)
	log.Printf("grid %dx%d, %d live cells", grid.Width(), grid.Height(), grid.Population())

	var ticks <-chan time.Time
	if opts.gps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.gps))
		defer ticker.Stop()
		ticks = ticker.C
	}

	ctrl.SetRunning(true)
	for opts.steps == 0 || grid.Generation() < opts.steps {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return finish(grid, opts, out)
			case <-ticks:
			}
		} else if ctx.Err() != nil {
			return finish(grid, opts, out)
		}
		start := time.Now()
		ctrl.Advance(true)
		rec.Step(grid, time.Since(start))
		if opts.every > 0 && grid.Generation()%opts.every == 0 {
			log.Printf("generation %d: %d live cells", grid.Generation(), grid.Population())
		}
	}
	return finish(grid, opts, out)
}

func finish(grid *life.Grid, opts *options, out io.Writer) error {
	log.Printf("stopped at generation %d with %d live cells", grid.Generation(), grid.Population())
	if opts.print {
		_, err := io.WriteString(out, grid.String())
		return err
	}
	return nil
}

// soup runs independent random trials, each on its own grid and goroutine,
// and prints the final population per seed in trial order.
func soup(ctx context.Context, cfg life.Config, opts *options, rec *metrics.Recorder, out io.Writer) error {
	if cfg.Density == 0 {
		cfg.Density = soupDensity
	}
	seeds := make([]int64, opts.trials)
	rng := core.NewRNG(cfg.Seed)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	steps := opts.steps
	if steps <= 0 {
		steps = 100
	}

	results := make([]int, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		eg.SetLimit(opts.workers)
	}
	for i, seed := range seeds {
		eg.Go(func() error {
			trial := cfg
			trial.Seed = seed
			grid, err := trial.Build()
			if err != nil {
				return err
			}
			for grid.Generation() < steps {
				if err := ctx.Err(); err != nil {
					return err
				}
				grid.Step()
			}
			results[i] = grid.Population()
			rec.Trial(results[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i, seed := range seeds {
		if _, err := fmt.Fprintf(out, "seed=%d population=%d\n", seed, results[i]); err != nil {
			return err
		}
	}
	return nil
}
