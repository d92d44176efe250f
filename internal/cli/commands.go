package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/atlas"
	"github.com/aretw0/atlas/internal/presentation/report"
	"github.com/aretw0/atlas/internal/presentation/tui"
	"github.com/aretw0/atlas/pkg/domain"
	"github.com/aretw0/atlas/pkg/schema"

	httpAdapter "github.com/aretw0/atlas/pkg/adapters/http"
)

// shutdownTimeout bounds how long serve waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Run loads the datasets and prints the selected exercises (all when none are named).
func Run(ctx context.Context, opts RunOptions) error {
	app, err := Setup(opts.Options)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = app.Config.Output.Format
	}

	out := opts.stdout()
	tty := out == os.Stdout && tui.IsTerminal(os.Stdout)

	ropts := report.Options{Color: tty}
	if tty {
		ropts.Markdown = tui.NewRenderer()
	}
	render, err := report.New(format, ropts)
	if err != nil {
		return err
	}

	if opts.Banner && tty && format == report.FormatText {
		tui.PrintBanner(out, atlas.Version)
	}

	r := &atlas.Runner{Output: out, Renderer: atlas.ResultRenderer(render)}
	if err := r.Run(ctx, app.Workbook, opts.Names...); err != nil {
		if errors.Is(err, domain.ErrLoad) {
			return err
		}
		return fmt.Errorf("some exercises failed: %w", err)
	}
	return nil
}

// List prints the exercise catalogue.
func List(opts Options) error {
	app, err := Setup(opts)
	if err != nil {
		return err
	}

	out := opts.stdout()
	for _, ex := range app.Workbook.Exercises() {
		fmt.Fprintf(out, "%-13s %-12s %-7s %s\n", ex.Name, ex.Group, ex.Dataset, ex.Title)
	}
	return nil
}

// Validate loads both datasets and checks them against their schemas.
func Validate(ctx context.Context, opts Options) error {
	app, err := Setup(opts)
	if err != nil {
		return err
	}
	wb := app.Workbook

	if err := wb.Load(ctx); err != nil {
		return err
	}

	out := opts.stdout()
	ds, err := wb.Datasets()
	if err != nil {
		return err
	}
	for _, name := range []string{domain.DatasetStates, domain.DatasetArt} {
		records, _ := ds.ByName(name)
		fmt.Fprintf(out, "%s: %d records, schema %s\n", name, len(records), wb.Schema(name).Describe())
	}

	verr := wb.Validate(ctx)
	if verr == nil {
		printSystemMessage(out, "Datasets are valid.")
		return nil
	}

	total := 0
	for _, aggr := range schema.Aggregates(verr) {
		for _, p := range aggr.Errors {
			fmt.Fprintf(out, "  - %s: %v\n", aggr.Dataset, p)
		}
		total += len(aggr.Errors)
	}
	return fmt.Errorf("%d problem(s) found: %w", total, verr)
}

// Serve loads the datasets and serves them over HTTP until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	app, err := Setup(opts.Options)
	if err != nil {
		return err
	}
	if err := app.Workbook.Load(ctx); err != nil {
		return err
	}

	addr := opts.Addr
	if addr == "" {
		addr = app.Config.Serve.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpAdapter.NewHandler(app.Workbook, app.Metrics.Handler(), app.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting atlas server", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		app.Logger.Info("Shutting down atlas server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		<-serverErrors
		return nil
	}
}
