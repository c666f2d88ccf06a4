package storage

import (
	"fmt"
	"os"

	"github.com/kvistgaard/kinbox/internal/core"
)

// AppendTrail appends a trail to the plain-text position log: one point
// per line as "x, y", no header, trail order preserved. The file is the
// session's durable artifact, written once at shutdown, so any failure is
// returned to the caller rather than swallowed.
func AppendTrail(path string, trail []core.Vec2) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("storage: cannot open trail log %s: %w", path, err)
	}

	for _, p := range trail {
		if _, err := fmt.Fprintf(f, "%v, %v\n", p.X, p.Y); err != nil {
			f.Close()
			return fmt.Errorf("storage: cannot write trail log %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot close trail log %s: %w", path, err)
	}
	return nil
}
