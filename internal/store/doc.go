package store

// Package store persists the tracker settings record as a small JSON file.
