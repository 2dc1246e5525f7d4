package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	FetchRequests       atomic.Int64
	FetchErrors         atomic.Int64
	HTMLExtractions     atomic.Int64
	PDFExtractions      atomic.Int64
	PDFUploads          atomic.Int64
	YouTubeExtractions  atomic.Int64
	UnsupportedRequests atomic.Int64
}

// metricKeys fixes the output order of FormatMetrics.
var metricKeys = []string{
	"fetch_requests", "fetch_errors",
	"html_extractions", "pdf_extractions", "pdf_uploads", "youtube_extractions",
	"unsupported_requests",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"fetch_requests":       metrics.FetchRequests.Load(),
		"fetch_errors":         metrics.FetchErrors.Load(),
		"html_extractions":     metrics.HTMLExtractions.Load(),
		"pdf_extractions":      metrics.PDFExtractions.Load(),
		"pdf_uploads":          metrics.PDFUploads.Load(),
		"youtube_extractions":  metrics.YouTubeExtractions.Load(),
		"unsupported_requests": metrics.UnsupportedRequests.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// countKind records a completed extraction, or a rejected unsupported target.
func countKind(k Kind) {
	switch k {
	case KindHTML:
		metrics.HTMLExtractions.Add(1)
	case KindPDF:
		metrics.PDFExtractions.Add(1)
	case KindYouTube:
		metrics.YouTubeExtractions.Add(1)
	case KindUnsupported:
		metrics.UnsupportedRequests.Add(1)
	}
}

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
