package recordings

import (
	"path"
	"time"
)

// keyTimeLayout is fixed-width, zero-padded, most-significant-unit-first, so
// keys sort lexically by capture time. Millisecond resolution keeps rapid
// consecutive recordings from colliding.
const keyTimeLayout = "20060102T150405.000"

// ObjectKey derives the bucket key for a recording captured at t with the
// given extension (including the leading dot). Pure string formatting:
// deterministic for the same inputs, no failure mode. The prefix is a plain
// folder name; path.Join keeps separators clean when it is empty.
func ObjectKey(prefix string, t time.Time, ext string) string {
	return path.Join(prefix, "recording_"+t.UTC().Format(keyTimeLayout)+ext)
}
