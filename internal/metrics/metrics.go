package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_recordings_uploaded_total",
			Help: "Total number of recording upload attempts by outcome",
		},
		[]string{"outcome"},
	)
	PublishErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_recordings_publish_errors_total",
			Help: "Total number of signed URL generation failures after a successful upload",
		},
	)
	UploadBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voice_recordings_upload_bytes",
			Help:    "Size of uploaded recordings in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
	UploadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voice_recordings_upload_duration_seconds",
			Help:    "Duration of recording uploads to object storage",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(UploadsTotal)
	prometheus.MustRegister(PublishErrorsTotal)
	prometheus.MustRegister(UploadBytes)
	prometheus.MustRegister(UploadDuration)
}
