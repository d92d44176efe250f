package atlas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/atlas/pkg/exercise"
)

// ResultRenderer turns one exercise result into printable text.
// This allows terminal, JSON or markdown output without coupling the core package.
type ResultRenderer func(exercise.Result) (string, error)

// Runner prints exercise results to an output stream.
type Runner struct {
	Output   io.Writer
	Renderer ResultRenderer
}

// NewRunner creates a Runner writing indented JSON to stdout.
// Set Output/Renderer to override.
func NewRunner() *Runner {
	return &Runner{}
}

// Run loads the workbook (if needed), runs the named exercises (all when empty)
// and prints each result as it completes.
// Load failures abort immediately; exercise failures are printed and returned joined.
func (r *Runner) Run(ctx context.Context, wb *Workbook, names ...string) error {
	out := r.Output
	if out == nil {
		out = os.Stdout
	}
	render := r.Renderer
	if render == nil {
		render = renderJSON
	}

	if _, err := wb.Datasets(); err != nil {
		if err := wb.Load(ctx); err != nil {
			return err
		}
	}

	results, runErr := wb.RunAll(ctx, names...)
	for _, res := range results {
		text, err := render(res)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", res.Name, err)
		}
		if _, err := io.WriteString(out, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return runErr
}

func renderJSON(res exercise.Result) (string, error) {
	if res.Err != nil {
		return fmt.Sprintf("# %s\nerror: %v\n", res.Name, res.Err), nil
	}
	b, err := json.MarshalIndent(res.Value, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("# %s\n%s\n", res.Name, b), nil
}
