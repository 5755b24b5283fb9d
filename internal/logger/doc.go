package logger

// Package logger builds the zerolog loggers shared by the launcher services.
