package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCloseLogFile(t *testing.T) {
	closeFailed := errors.New("close failed")
	runFailed := errors.New("run failed")

	tests := []struct {
		name     string
		err      error
		closeErr error
		expected error
	}{
		{"both succeed", nil, nil, nil},
		{"close fails", nil, closeFailed, closeFailed},
		{"run error wins", runFailed, closeFailed, runFailed},
		{"run error kept", runFailed, nil, runFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			closeLogFile(&err, func() error { return tt.closeErr })
			if tt.expected == nil {
				if err != nil {
					t.Errorf("got %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("got %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestNewLoggerWritesAndClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")
	flagLogFile = path
	t.Cleanup(func() { flagLogFile = "" })

	logger, closeFn, err := newLogger(os.Stderr)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("round started")

	var runErr error
	closeLogFile(&runErr, closeFn)
	if runErr != nil {
		t.Fatalf("close: %v", runErr)
	}
	// A second close reports the already-closed file.
	closeLogFile(&runErr, closeFn)
	if !errors.Is(runErr, os.ErrClosed) {
		t.Errorf("second close: got %v, expected %v", runErr, os.ErrClosed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Errorf("log file: got %q, expected it to contain %q", data, "round started")
	}
}
