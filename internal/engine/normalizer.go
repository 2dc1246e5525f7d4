package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// TranscriptExtractor turns a YouTube URL into subtitle-track text.
type TranscriptExtractor interface {
	Extract(ctx context.Context, videoURL string) (string, error)
}

// Normalizer fetches a URL or takes an uploaded buffer and produces ExtractedContent.
// It holds no per-request state and is safe for concurrent use.
type Normalizer struct {
	client      *http.Client // classification GET
	pdfClient   *http.Client // independent client for the binary PDF re-fetch
	maxBody     int64
	markdown    *MarkdownConverter
	transcripts TranscriptExtractor
}

// NewNormalizer builds a Normalizer from c. transcripts may be nil, in which case
// YouTube links fail with ErrTranscriptUnavailable.
func NewNormalizer(c Config, transcripts TranscriptExtractor) *Normalizer {
	timeout := c.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := c.HTTPClient
	if client == nil {
		client = newFetchClient(timeout)
	}
	return &Normalizer{
		client:      client,
		pdfClient:   newFetchClient(timeout),
		maxBody:     c.MaxBodyBytes,
		markdown:    NewMarkdownConverter(),
		transcripts: transcripts,
	}
}

// FetchContentFromURL fetches rawURL once, classifies it, and runs exactly one extractor.
// Every failure wraps one of the Err* sentinels; no partial result is returned.
func (n *Normalizer) FetchContentFromURL(ctx context.Context, rawURL string) (out *ExtractedContent, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
			out = nil
		}
	}()

	err = TrackOperation(ctx, "fetch:"+rawURL, func(ctx context.Context) error {
		var ferr error
		out, ferr = n.fetchContent(ctx, rawURL)
		return ferr
	})
	return out, err
}

func (n *Normalizer) fetchContent(ctx context.Context, rawURL string) (*ExtractedContent, error) {
	resp, err := fetchOnce(ctx, n.client, rawURL, acceptAny)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	kind := Sniff(rawURL, contentType)
	slog.Debug("normalizer: classified",
		slog.String("url", rawURL),
		slog.String("kind", kind.String()),
		slog.String("content_type", contentType))

	var out *ExtractedContent
	switch kind {
	case KindYouTube:
		out, err = n.fromYouTube(ctx, rawURL)
	case KindHTML:
		out, err = n.fromHTML(resp, rawURL)
	case KindPDF:
		out, err = n.fromPDF(ctx, rawURL)
	case KindUnsupported:
		countKind(kind)
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedType, contentType)
	default:
		return nil, fmt.Errorf("%w: unhandled kind %s", ErrUnsupportedType, kind)
	}
	if err != nil {
		return nil, err
	}
	countKind(kind)
	return out, nil
}

// fromYouTube ignores the already fetched response body.
func (n *Normalizer) fromYouTube(ctx context.Context, rawURL string) (*ExtractedContent, error) {
	if n.transcripts == nil {
		return nil, fmt.Errorf("%w: no transcript extractor configured", ErrTranscriptUnavailable)
	}
	srt, err := n.transcripts.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return &ExtractedContent{
		URL:     rawURL,
		Content: srt,
		Size:    len(srt),
		Type:    TypePlain,
	}, nil
}

func (n *Normalizer) fromHTML(resp *http.Response, rawURL string) (*ExtractedContent, error) {
	body, err := readResponseBody(resp, n.maxBody)
	if err != nil {
		return nil, err
	}
	raw := string(body)
	md, title, err := n.markdown.ConvertPageWithTitle(raw, rawURL)
	if err != nil {
		return nil, err
	}
	return &ExtractedContent{
		URL:     rawURL,
		Title:   title,
		Content: md,
		Size:    len(raw),
		Type:    TypeHTML,
	}, nil
}

// fromPDF re-fetches rawURL as binary on its own client.
func (n *Normalizer) fromPDF(ctx context.Context, rawURL string) (*ExtractedContent, error) {
	resp, err := fetchOnce(ctx, n.pdfClient, rawURL, acceptBinary)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := readResponseBody(resp, n.maxBody)
	if err != nil {
		return nil, err
	}
	text, err := ExtractPDFText(data)
	if err != nil {
		return nil, err
	}
	return &ExtractedContent{
		URL:     rawURL,
		Content: text,
		Size:    len(text),
		Type:    TypePDF,
	}, nil
}

// ExtractPDFFromBuffer extracts text from an uploaded PDF. No network, no classification;
// the result carries no URL.
func (n *Normalizer) ExtractPDFFromBuffer(data []byte) (*ExtractedContent, error) {
	metrics.PDFUploads.Add(1)
	text, err := ExtractPDFText(data)
	if err != nil {
		return nil, err
	}
	return &ExtractedContent{
		Content: text,
		Size:    len(text),
		Type:    TypePDF,
	}, nil
}
