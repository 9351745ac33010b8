package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// capture redirects output for the duration of a test.
func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestVerboseOnlyLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("fetching %s", "EU877942.1") }, "[DEBUG] fetching EU877942.1\n"},
		{"info", func() { Info("cache hit %d", 1) }, "[INFO] cache hit 1\n"},
		{"section", func() { Section("Resolve") }, "\n=== Resolve ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" verbose", func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			if got := buf.String(); got != tt.want {
				t.Errorf("unexpected output: %q", got)
			}
		})
		t.Run(tt.name+" quiet", func(t *testing.T) {
			buf := capture(t, false)
			tt.log()
			if buf.Len() > 0 {
				t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
			}
		})
	}
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Warn("removing corrupted cache file %s", "nuccore-X.fasta")

	if got := buf.String(); got != "[WARN] removing corrupted cache file nuccore-X.fasta\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("resolve failed: %v", "boom")

	if got := buf.String(); got != "[ERROR] resolve failed: boom\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConcurrentLogging(t *testing.T) {
	buf := capture(t, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("message %d", n)
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "[DEBUG]"); got != 10 {
		t.Errorf("expected 10 debug lines, got %d", got)
	}
}
