package models

import "time"

// Session status values for the recording workflow.
const (
	StatusNotStarted = "not_started"
	StatusRecording  = "recording"
	StatusUploading  = "uploading"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
)

// Recording is a captured audio blob handed over by the browser when the
// user stops recording. It lives only for the duration of one upload attempt.
type Recording struct {
	Data        []byte
	ContentType string
	CapturedAt  time.Time
}

// StoredObject references a recording that has been written to the bucket.
// SignedURL/ExpiresAt are set once the publish step succeeds.
type StoredObject struct {
	Bucket    string    `json:"bucket"`
	Key       string    `json:"key"`
	SignedURL string    `json:"signed_url,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
