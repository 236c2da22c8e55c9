// Package session holds per-connection workflow state. The original design
// kept {status, lastError, lastUrl} in process-wide UI globals; here it is an
// explicit session-scoped object behind a Store so handlers stay stateless
// and tests can substitute the backend.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no session exists for the given id.
var ErrNotFound = errors.New("session not found")

// State is one user's view of the recording workflow.
type State struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	LastErrorKind string    `json:"last_error_kind,omitempty"`
	LastError     string    `json:"last_error,omitempty"`
	LastURL       string    `json:"last_url,omitempty"`
	URLExpiresAt  time.Time `json:"url_expires_at,omitempty"`
	Bucket        string    `json:"bucket,omitempty"`
	Key           string    `json:"key,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store persists session state for the lifetime of the user's visit.
type Store interface {
	Create(ctx context.Context, status string) (*State, error)
	Get(ctx context.Context, id string) (*State, error)
	Put(ctx context.Context, st *State) error
}

// NewID returns a fresh session identifier.
func NewID() string { return uuid.New().String() }
