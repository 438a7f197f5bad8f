package dendrogram

import (
	"fmt"
	"io"
	"log/slog"
)

// ProgressFunc is called once per level, before the level is processed,
// with the 0-based level index and the total number of levels. It only
// observes the build and cannot change its result.
type ProgressFunc func(index, total int)

// NoProgress discards progress reports.
func NoProgress(int, int) {}

// WriterProgress prints a "Level i/n" line per level to w, counting from 1.
func WriterProgress(w io.Writer) ProgressFunc {
	return func(index, total int) {
		fmt.Fprintf(w, "Level %d/%d\n", index+1, total)
	}
}

// LogProgress reports each level to logger at info level, counting from 1.
// This is what Build uses when Config.Progress is nil.
func LogProgress(logger *slog.Logger) ProgressFunc {
	return func(index, total int) {
		logger.Info("dendrogram: level", "level", index+1, "total", total)
	}
}
