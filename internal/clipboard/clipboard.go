package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Writer is the host clipboard collaborator. Writes are best-effort
// convenience: callers treat any error as a silent no-op and rely on the
// displayed text being selectable as the manual fallback.
type Writer interface {
	WriteText(value string) error
}

type systemWriter struct{}

// System returns a Writer backed by the OS clipboard.
func System() Writer {
	return systemWriter{}
}

func (systemWriter) WriteText(value string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unavailable on this platform")
	}
	return clipboard.WriteAll(value)
}
