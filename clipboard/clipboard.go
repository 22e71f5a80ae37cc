// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no clipboard utility is available (e.g. over
// SSH).
package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/andareed/pokeplot/logging"
)

// ErrUnavailable is returned when neither the system clipboard nor OSC52
// can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Swappable for tests.
var (
	writeAll              = clipboard.WriteAll
	osc52Out    io.Writer = os.Stderr
	osc52Usable           = osc52Supported
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	err := writeAll(text)
	if err == nil {
		logging.Infof("Clipboard: copied %d bytes", len(text))
		return nil
	}
	logging.Warnf("Clipboard: system clipboard failed: %v", err)
	return copyOSC52(text)
}

func copyOSC52(text string) error {
	if !osc52Usable() {
		logging.Warnf("Clipboard: OSC52 unavailable (stderr not TTY or TERM=dumb)")
		return ErrUnavailable
	}
	if _, err := osc52.New(text).WriteTo(osc52Out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
