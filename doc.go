/*
Package atlas runs small collection-iteration exercises against two bundled datasets:
the fifty US states and a handful of artworks.

Every exercise is a pure transform (map, filter or reduce) from one dataset to a derived
value: sentences built from each state, a projection of artwork fields, a histogram of
initial letters, the distinct art styles, the works of a single artist.

# Concept

Datasets are read once through a DatasetLoader (bundled files by default, or a directory,
Redis, or memory). Transforms never mutate their input; each returns freshly built records.
The Workbook binds the loaded datasets to an exercise catalogue and reports lifecycle events
to hooks, so the same exercises can be printed by the CLI, served over HTTP or counted in
Prometheus.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/atlas"
	)

	func main() {
		wb, err := atlas.New()
		if err != nil {
			log.Fatal(err)
		}

		// Load datasets and print every exercise result to stdout
		if err := atlas.NewRunner().Run(context.Background(), wb); err != nil {
			log.Fatal(err)
		}
	}

# Errors

Two failure kinds reach callers: *domain.LoadError when a dataset cannot be read or parsed,
and *domain.MissingFieldError when a record lacks a field an exercise needs.
*/
package atlas
