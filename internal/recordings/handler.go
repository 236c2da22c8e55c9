package recordings

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voicedrop/backend/internal/models"
	"github.com/voicedrop/backend/internal/session"
	"github.com/voicedrop/backend/pkg/response"
	"github.com/voicedrop/backend/pkg/storage"
)

// Handler handles recording session HTTP endpoints.
type Handler struct {
	workflow *Workflow
	sessions session.Store
	maxSize  int64
	logger   *zap.Logger
}

// NewHandler creates a recordings handler.
func NewHandler(workflow *Workflow, sessions session.Store, maxSize int64, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{workflow: workflow, sessions: sessions, maxSize: maxSize, logger: logger}
}

// Register wires the handler's routes onto r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/api/sessions", h.CreateSession)
	r.GET("/api/sessions/:id", h.GetSession)
	r.POST("/api/sessions/:id/recording-started", h.RecordingStarted)
	r.POST("/api/sessions/:id/recording", h.Upload)
}

// CreateSession handles POST /api/sessions. Each browser visit owns one session.
func (h *Handler) CreateSession(c *gin.Context) {
	st, err := h.sessions.Create(c.Request.Context(), models.StatusNotStarted)
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		response.Internal(c, "failed to create session")
		return
	}
	response.Created(c, st)
}

// GetSession handles GET /api/sessions/:id.
func (h *Handler) GetSession(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, "session not found")
			return
		}
		h.logger.Error("get session failed", zap.Error(err))
		response.Internal(c, "failed to load session")
		return
	}
	response.OK(c, st)
}

// RecordingStarted handles POST /api/sessions/:id/recording-started. The
// browser reports the idle → recording transition so the state survives a
// page reload.
func (h *Handler) RecordingStarted(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.NotFound(c, "session not found")
		return
	}
	if st.Status == models.StatusUploading {
		response.Conflict(c, "an upload is already in progress")
		return
	}
	st.Status = models.StatusRecording
	st.LastError, st.LastErrorKind = "", ""
	if err := h.sessions.Put(c.Request.Context(), st); err != nil {
		h.logger.Error("store session failed", zap.Error(err))
		response.Internal(c, "failed to update session")
		return
	}
	response.OK(c, st)
}

// Upload handles POST /api/sessions/:id/recording. It accepts the captured
// audio blob as multipart field "audio", runs the upload-and-publish workflow
// and reports the terminal state. Re-recording while an upload is in flight
// is rejected so two recordings never race for the same timestamp-derived key.
func (h *Handler) Upload(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, "session not found")
			return
		}
		h.logger.Error("get session failed", zap.Error(err))
		response.Internal(c, "failed to load session")
		return
	}
	if st.Status == models.StatusUploading {
		response.Conflict(c, "an upload is already in progress")
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		response.BadRequest(c, "missing audio file")
		return
	}
	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		response.BadRequest(c, "recording too large")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.IsAudioContentType(contentType) {
		response.BadRequest(c, "unsupported content type")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unreadable audio file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "unreadable audio file")
		return
	}

	// Zero-length capture: stopping mid-recording truncated the blob to
	// nothing. Not an upload attempt and not an error.
	if len(data) == 0 {
		st.Status = models.StatusNotStarted
		if err := h.sessions.Put(c.Request.Context(), st); err != nil {
			h.logger.Error("store session failed", zap.Error(err))
		}
		response.OK(c, gin.H{"skipped": true, "session": st})
		return
	}

	st.Status = models.StatusUploading
	st.LastError, st.LastErrorKind, st.LastURL = "", "", ""
	if err := h.sessions.Put(c.Request.Context(), st); err != nil {
		h.logger.Error("store session failed", zap.Error(err))
		response.Internal(c, "failed to update session")
		return
	}

	rec := models.Recording{Data: data, ContentType: contentType, CapturedAt: time.Now().UTC()}
	obj, err := h.workflow.Run(c.Request.Context(), rec)
	if err != nil {
		kind := ErrKind(err)
		st.Status = models.StatusFailed
		st.LastErrorKind = string(kind)
		st.LastError = userMessage(kind)
		if obj != nil {
			st.Bucket, st.Key = obj.Bucket, obj.Key
		}
		if perr := h.sessions.Put(c.Request.Context(), st); perr != nil {
			h.logger.Error("store session failed", zap.Error(perr))
		}
		response.WorkflowError(c, http.StatusBadGateway, string(kind), st.LastError, obj)
		return
	}

	st.Status = models.StatusSucceeded
	st.Bucket, st.Key = obj.Bucket, obj.Key
	st.LastURL = obj.SignedURL
	st.URLExpiresAt = obj.ExpiresAt
	if err := h.sessions.Put(c.Request.Context(), st); err != nil {
		h.logger.Error("store session failed", zap.Error(err))
	}
	response.OK(c, obj)
}

// userMessage words the failure for the feedback surface. A publish failure
// must not suggest re-recording: the object is already stored.
func userMessage(kind Kind) string {
	switch kind {
	case KindAuth:
		return "credentials expired or access denied; refresh your cloud session and try again"
	case KindPublish:
		return "upload succeeded but link generation failed; the recording is stored"
	default:
		return "upload failed; re-record to try again"
	}
}
