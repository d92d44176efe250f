// Package exercise is the catalogue of runnable exercises.
//
// Each Exercise binds one transform from pkg/transform to the dataset it reads.
// Default returns the bundled catalogue: four map exercises over states and art,
// followed by three reduce exercises.
package exercise
