// Package prep implements the row-level dataset transformations of the pipeline:
// word-count filtering, per-class balancing and stratified train/test splitting.
// Every function returns a new dataset and leaves its input untouched. Randomness
// is driven only by the seed argument, so equal inputs and seeds give equal outputs.
package prep
