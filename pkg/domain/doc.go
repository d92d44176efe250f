/*
Package domain contains the core data model shared by the loaders, transforms and exercises.

It is kept free of I/O: loaders live under pkg/adapters and transforms under pkg/transform.

# Key Entities

  - Record: one entry of a dataset, a mapping from field name to value.
  - Datasets: the two loaded collections (states and artworks) handed to every exercise.
  - State / Artwork: typed views decoded from a Record for callers that prefer structs.
  - LoadError / MissingFieldError: the two failure kinds surfaced to callers.
*/
package domain
