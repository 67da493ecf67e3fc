package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "netrunner.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log and slog output to dir/netrunner.log when debug is set
// Without debug all output is discarded so nothing reaches the terminal under the UI
func setupLogging(debug bool, dir string) (*os.File, *slog.Logger) {
	if !debug {
		// The default slog handler writes through the log package
		log.SetOutput(io.Discard)
		return nil, slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create log dir: %v\n", err)
		return setupLogging(false, dir)
	}

	path := filepath.Join(dir, logFileName)
	rotateLog(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return setupLogging(false, dir)
	}

	// SetDefault also points the log package at the file handler
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	logger.Info("logging started", slog.Int("pid", os.Getpid()))
	return f, logger
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
