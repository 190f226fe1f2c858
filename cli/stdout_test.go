package cli

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// captureStdout runs f with os.Stdout redirected and returns what it printed.
// The pipe is drained while f runs so long pages cannot fill its buffer.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		out <- buf.String()
	}()

	f()
	w.Close()
	return <-out
}
