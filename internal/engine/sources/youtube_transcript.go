package sources

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_ingest/internal/engine"
)

// YouTube caption providers. Each one makes a single attempt per call:
//   WatchPageProvider: watch page ytInitialPlayerResponse → captionTracks → timedtext XML
//   PlayerProvider:    ANDROID Innertube /player → captionTracks → timedtext XML

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// WatchPageProvider scrapes the watch page. Works from any IP.
type WatchPageProvider struct {
	Client   *http.Client
	Langs    []string
	WatchURL string // default https://www.youtube.com/watch
}

// FetchSegments implements TranscriptProvider.
func (p *WatchPageProvider) FetchSegments(ctx context.Context, videoID string) ([]Segment, error) {
	base := p.WatchURL
	if base == "" {
		base = ytWatchURL
	}
	watchURL := base + "?v=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := httpClient(p.Client)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	idx := strings.Index(string(body), ytInitialPlayerResponseMarker)
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return captionSegments(ctx, client, playerResp, p.Langs)
}

// PlayerProvider uses the ANDROID Innertube /player endpoint.
// Works from non-blocked (residential/cloud) IP addresses.
type PlayerProvider struct {
	Client    *http.Client
	Langs     []string
	PlayerURL string // default https://www.youtube.com/youtubei/v1/player
}

// FetchSegments implements TranscriptProvider.
func (p *PlayerProvider) FetchSegments(ctx context.Context, videoID string) ([]Segment, error) {
	endpoint := p.PlayerURL
	if endpoint == "" {
		endpoint = ytInnertubeURL
	}
	client := httpClient(p.Client)
	data, err := postInnertubeAndroid(ctx, client, endpoint, videoID)
	if err != nil {
		return nil, err
	}
	var playerResp innertubePlayerResp
	if err := json.Unmarshal(data, &playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return captionSegments(ctx, client, playerResp, p.Langs)
}

func httpClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	if engine.Cfg.HTTPClient != nil {
		return engine.Cfg.HTTPClient
	}
	return http.DefaultClient
}

// captionSegments picks a track from a player response and downloads its cues.
func captionSegments(ctx context.Context, client *http.Client, playerResp innertubePlayerResp, langs []string) ([]Segment, error) {
	if playerResp.Captions == nil {
		if playerResp.PlayabilityStatus != nil && playerResp.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", playerResp.PlayabilityStatus.Reason)
		}
		return nil, errors.New("no captions in player response")
	}
	tracks := playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks")
	}
	track, ok := pickBestTrack(tracks, langs)
	if !ok {
		return nil, errors.New("all caption tracks require PoToken")
	}
	return fetchTimedText(ctx, client, track.BaseURL)
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the given language preferences.
// Skips tracks that require PoToken — those only work in a browser.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	// 1. Manual track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	// 2. Auto-generated track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	// 3. Any English track
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchTimedText downloads a timedtext XML caption URL and parses its cues.
func fetchTimedText(ctx context.Context, client *http.Client, baseURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// parseTimedText turns timedtext XML into segments, keeping document order.
// Cues whose text is empty after cleanup are skipped.
func parseTimedText(body []byte) ([]Segment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segs := make([]Segment, 0, len(tt.Texts)+len(tt.Paragraphs))
	for _, line := range tt.Texts {
		text := cleanCaption(line.Text)
		if text == "" {
			continue
		}
		segs = append(segs, Segment{
			Start:    parseSeconds(line.Start),
			Duration: parseSeconds(line.Dur),
			Text:     text,
		})
	}
	for _, p := range tt.Paragraphs {
		text := cleanCaption(engine.CleanHTML(p.Inner))
		if text == "" {
			continue
		}
		segs = append(segs, Segment{
			Start:    time.Duration(p.T) * time.Millisecond,
			Duration: time.Duration(p.D) * time.Millisecond,
			Text:     text,
		})
	}
	return segs, nil
}

// cleanCaption undoes the second round of entity escaping timedtext uses and strips tags.
func cleanCaption(s string) string {
	return engine.CleanHTML(html.UnescapeString(s))
}

// parseSeconds reads a decimal seconds attribute such as "12.345", rounded to the millisecond.
func parseSeconds(s string) time.Duration {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return time.Duration(math.Round(f*1000)) * time.Millisecond
}

// extractJSON returns the balanced JSON object at the start of b, or nil.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
