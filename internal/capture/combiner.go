package capture

import (
	"fmt"
	"os"
	"path/filepath"
)

// Combiner appends fetched segment bytes to a combined-file target.
// Implementations must release the file handle before returning,
// regardless of outcome.
type Combiner interface {
	Append(path string, data []byte) error
}

// FileCombiner appends to an on-disk combined file, creating it (and its
// parent directory) if absent. Opening an existing target never truncates
// it.
type FileCombiner struct{}

// Append implements Combiner.
func (FileCombiner) Append(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("combine: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("combine: %w", err)
	}
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("combine: write %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("combine: close %s: %w", path, cerr)
	}
	return nil
}
