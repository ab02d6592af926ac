package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("tty is gone")
}

func TestWriteOSC52ReportsSuccessForNonEmptyText(t *testing.T) {
	var buf bytes.Buffer

	if !writeOSC52(&buf, "https://sub.example.com/sub/1") {
		t.Fatalf("expected fallback to succeed for non-empty text")
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;c;") || !strings.HasSuffix(out, "\x07") {
		t.Fatalf("unexpected escape sequence framing: %q", out)
	}

	payload := strings.TrimSuffix(strings.TrimPrefix(out, "\x1b]52;c;"), "\x07")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	if string(decoded) != "https://sub.example.com/sub/1" {
		t.Fatalf("payload mismatch: got %q", decoded)
	}
}

func TestWriteOSC52EmptyText(t *testing.T) {
	var buf bytes.Buffer

	if writeOSC52(&buf, "") {
		t.Fatalf("expected failure for empty text")
	}

	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

func TestWriteOSC52WriterFailure(t *testing.T) {
	if writeOSC52(failingWriter{}, "text") {
		t.Fatalf("expected failure when the writer errors")
	}
}
