/*
Package audio provides the best-effort persona sound cue player.

Cues are decorative: every failure to play is swallowed by callers and
must never reach the selection path. The default player rings the
terminal bell; Nop discards cues entirely.
*/
package audio

import (
	"fmt"
	"io"
)

// Player plays a short, named sound cue.
type Player interface {
	// Play plays the named cue. Callers treat errors as best-effort
	// and swallow them.
	Play(cue string) error
}

// BellPlayer signals cues with the terminal bell character.
type BellPlayer struct {
	// Out is where the bell is written, typically os.Stderr.
	Out io.Writer
}

// NewBellPlayer creates a bell player writing to the given writer.
func NewBellPlayer(out io.Writer) *BellPlayer {
	return &BellPlayer{Out: out}
}

// Play rings the terminal bell. The cue name selects nothing today; it is
// carried so a richer player can be swapped in behind the interface.
func (p *BellPlayer) Play(cue string) error {
	if p.Out == nil {
		return fmt.Errorf("no output writer configured")
	}
	if cue == "" {
		return nil
	}
	_, err := fmt.Fprint(p.Out, "\a")
	return err
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(cue string) error { return nil }
