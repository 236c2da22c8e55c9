package recordings

import (
	"bytes"
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/voicedrop/backend/internal/metrics"
	"github.com/voicedrop/backend/internal/models"
	"github.com/voicedrop/backend/pkg/storage"
)

// ObjectStore is the injected storage capability: one whole-object put and
// one signed-URL issuance. pkg/storage.S3 implements it; tests substitute
// a double.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) error
	PresignGetObject(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
}

// Workflow turns a captured recording into a durably stored, signed-URL
// addressable object. One synchronous attempt per recording; all retry is
// user-initiated by recording again.
type Workflow struct {
	store     ObjectStore
	bucket    string
	keyPrefix string
	expiry    time.Duration
	logger    *zap.Logger
}

// NewWorkflow creates an upload workflow against bucket. expiry bounds the
// signed URL validity.
func NewWorkflow(store ObjectStore, bucket, keyPrefix string, expiry time.Duration, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{store: store, bucket: bucket, keyPrefix: keyPrefix, expiry: expiry, logger: logger}
}

// Expiry returns the configured signed-URL validity window.
func (w *Workflow) Expiry() time.Duration { return w.expiry }

// Run uploads rec and publishes a signed URL for it.
//
// A zero-length recording is a no-op: no store call, nil result, nil error.
// On a publish failure the returned StoredObject still carries bucket+key —
// the object IS stored — alongside an Error of KindPublish.
func (w *Workflow) Run(ctx context.Context, rec models.Recording) (*models.StoredObject, error) {
	if len(rec.Data) == 0 {
		w.logger.Warn("empty recording, skipping upload")
		return nil, nil
	}

	key := ObjectKey(w.keyPrefix, rec.CapturedAt, storage.ExtensionForContentType(rec.ContentType))
	w.logger.Info("uploading recording",
		zap.String("bucket", w.bucket),
		zap.String("key", key),
		zap.Int("size", len(rec.Data)),
		zap.String("content_type", rec.ContentType),
	)

	start := time.Now()
	err := w.store.PutObject(ctx, w.bucket, key, rec.ContentType, bytes.NewReader(rec.Data), int64(len(rec.Data)))
	if err != nil {
		werr := classifyUpload(err)
		metrics.UploadsTotal.WithLabelValues(string(werr.Kind)).Inc()
		w.logger.Error("upload failed", zap.Error(err), zap.String("key", key), zap.String("kind", string(werr.Kind)))
		return nil, werr
	}
	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadBytes.Observe(float64(len(rec.Data)))
	metrics.UploadDuration.Observe(time.Since(start).Seconds())

	obj := &models.StoredObject{Bucket: w.bucket, Key: key}

	url, err := w.store.PresignGetObject(ctx, w.bucket, key, w.expiry)
	if err != nil {
		metrics.PublishErrorsTotal.Inc()
		w.logger.Error("presign failed after successful upload", zap.Error(err), zap.String("key", key))
		return obj, &Error{Kind: KindPublish, Message: "upload succeeded but link generation failed", Err: err}
	}
	obj.SignedURL = url
	obj.ExpiresAt = time.Now().Add(w.expiry)

	w.logger.Info("recording stored", zap.String("key", key), zap.Time("url_expires_at", obj.ExpiresAt))
	return obj, nil
}
