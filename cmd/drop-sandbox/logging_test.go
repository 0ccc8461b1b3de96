package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggingDiscardedWithoutDebug(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("log file opened without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
}

func TestLoggingWritesFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Fatal("logging to the terminal")
	}

	log.Printf("dispatch chest: drop not queued")
	raw, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "drop not queued") {
		t.Errorf("log missing message: %q", raw)
	}
}

func TestLoggingRotatesLargeFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "drop-sandbox-") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("rotated files = %d, want 1", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log is %d bytes", info.Size())
	}
}
