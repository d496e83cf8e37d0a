// Package clipboard implements the two-tier copy strategy: probe the system
// clipboard, attempt it, fall back to an OSC 52 escape written to the
// terminal, and finally signal that manual copying is required.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Outcome tells the caller how (or whether) the text reached a clipboard.
type Outcome int

const (
	// CopiedPrimary means the system clipboard accepted the text.
	CopiedPrimary Outcome = iota
	// CopiedFallback means the text was sent via the OSC 52 terminal escape.
	CopiedFallback
	// ManualRequired means both tiers failed; the caller must present the
	// text for manual selection.
	ManualRequired
)

// Copier holds the tier functions. They are fields so tests can substitute
// failing or succeeding tiers without a real clipboard.
type Copier struct {
	supported func() bool
	primary   func(text string) error
	fallback  func(text string) error
}

func New() *Copier {
	return &Copier{
		supported: func() bool { return !clipboard.Unsupported },
		primary:   clipboard.WriteAll,
		fallback:  writeOSC52,
	}
}

// Copy attempts the tiers in order. A probe-negative or a thrown error on the
// primary tier moves on to the fallback rather than surfacing.
func (c *Copier) Copy(text string) Outcome {
	if c.supported() {
		if err := c.primary(text); err == nil {
			return CopiedPrimary
		}
	}
	if err := c.fallback(text); err == nil {
		return CopiedFallback
	}
	return ManualRequired
}

// writeOSC52 asks the terminal emulator to set the clipboard. Written to the
// controlling tty directly so it bypasses the alternate-screen buffer.
func writeOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	defer tty.Close()

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(tty, "\x1b]52;c;%s\x07", encoded); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}
