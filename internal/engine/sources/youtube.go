package sources

// YouTube implementation is split across four files by responsibility:
//   youtube.go            — video id parsing and the URL → subtitle-track extractor
//   srt.go                — subtitle-track serialization
//   youtube_innertube.go  — Innertube API types, constants, and low-level HTTP primitives
//   youtube_transcript.go — caption providers (watch page scrape, ANDROID player)

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anatolykoptev/go_ingest/internal/engine"
)

// Segment is one timed caption cue.
type Segment struct {
	Start    time.Duration
	Duration time.Duration
	Text     string
}

// TranscriptProvider returns the caption segments of a video in provider order.
type TranscriptProvider interface {
	FetchSegments(ctx context.Context, videoID string) ([]Segment, error)
}

// pathIDPrefixes are youtube.com path forms that carry the id as the second segment.
var pathIDPrefixes = map[string]bool{
	"shorts": true,
	"embed":  true,
	"live":   true,
	"v":      true,
}

// VideoID extracts the video id from a YouTube URL: the "v" query parameter,
// a youtu.be/<id> short link, or /shorts|embed|live|v/<id>.
func VideoID(rawURL string) (string, error) {
	s := strings.TrimSpace(rawURL)
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", engine.ErrInvalidInput
	}
	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case host == "youtu.be" && segs[0] != "":
		return segs[0], nil
	case len(segs) == 2 && pathIDPrefixes[segs[0]] && segs[1] != "":
		return segs[1], nil
	}
	return "", engine.ErrInvalidInput
}

// TranscriptExtractor serializes a video's captions as subtitle-track text.
// It implements engine.TranscriptExtractor.
type TranscriptExtractor struct {
	provider TranscriptProvider
}

// NewTranscriptExtractor wraps p.
func NewTranscriptExtractor(p TranscriptProvider) *TranscriptExtractor {
	return &TranscriptExtractor{provider: p}
}

// Extract resolves the video id, fetches its segments once, and formats them as SRT.
func (e *TranscriptExtractor) Extract(ctx context.Context, videoURL string) (string, error) {
	videoID, err := VideoID(videoURL)
	if err != nil {
		return "", err
	}
	segs, err := e.provider.FetchSegments(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", engine.ErrTranscriptUnavailable, videoID, err)
	}
	if len(segs) == 0 {
		return "", fmt.Errorf("%w: %s: no caption segments", engine.ErrTranscriptUnavailable, videoID)
	}
	return FormatSRT(segs), nil
}

// NewProvider picks the caption provider named by source: "player" for the
// Innertube ANDROID client, anything else for the watch page scraper.
func NewProvider(source string, client *http.Client, langs []string) TranscriptProvider {
	if strings.EqualFold(source, "player") {
		return &PlayerProvider{Client: client, Langs: langs}
	}
	return &WatchPageProvider{Client: client, Langs: langs}
}
