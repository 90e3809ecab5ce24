package timinglog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/pkmeans"
)

// DefaultPath is the log file used when no path is configured.
const DefaultPath = "output.txt"

// Append renders a summary with write and appends it to the file at path,
// creating the file if needed.
//
// A file that cannot be opened yields an error matching
// pkmeans.ErrResourceUnavailable; callers are expected to report it and
// carry on.
func Append(path string, write func(io.Writer) error) error {
	if path == "" {
		path = DefaultPath
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return fmt.Errorf("render timing summary: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open timing log: %w", pkmeans.ErrResourceUnavailable, err)
	}
	defer f.Close()

	if err := lock(f); err != nil {
		return fmt.Errorf("%w: lock timing log: %w", pkmeans.ErrResourceUnavailable, err)
	}
	defer unlock(f)

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write timing log: %w", err)
	}
	return nil
}
