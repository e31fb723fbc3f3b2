package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ridequeue/ridequeue-sim/sim/stats"
)

// writeResults encodes the statistics record as indented JSON.
func writeResults(w io.Writer, result *stats.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// saveResults writes the record to path, or to stdout when path is empty.
func saveResults(result *stats.Result, path string) error {
	if path == "" {
		return writeResults(os.Stdout, result)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeResults(file, result); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote '%s'", path)
	return nil
}
