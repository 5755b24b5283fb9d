package tracker

// Package tracker runs the external tracker executable with the six saved
// settings as positional arguments and classifies the outcome. The tracking
// itself happens entirely inside that executable.
