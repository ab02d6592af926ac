package clipboard

import (
	"encoding/base64"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard. The native clipboard is tried
// first; when it is unavailable or fails, an OSC 52 escape sequence is
// written to stdout, which terminal emulators translate into a clipboard
// write. Best effort: reports success or failure, never an error.
func Copy(text string) bool {
	if err := atotto.WriteAll(text); err == nil {
		return true
	}

	return writeOSC52(os.Stdout, text)
}

// writeOSC52 serializes text as an OSC 52 clipboard sequence.
func writeOSC52(w io.Writer, text string) bool {
	if text == "" {
		return false
	}

	payload := base64.StdEncoding.EncodeToString([]byte(text))

	_, err := io.WriteString(w, "\x1b]52;c;"+payload+"\x07")

	return err == nil
}
