// Package web embeds the single-page recorder UI.
package web

import _ "embed"

// IndexHTML is the recorder page: microphone capture via MediaRecorder,
// upload on stop, signed link display.
//
//go:embed index.html
var IndexHTML []byte
