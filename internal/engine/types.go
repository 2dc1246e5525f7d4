package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Content type tags carried by ExtractedContent.Type. These are display labels,
// not the MIME type the server answered with.
const (
	TypeHTML  = "text/html"
	TypePDF   = "application/pdf"
	TypePlain = "text/plain"
)

// ExtractedContent is the uniform result of every extraction path.
type ExtractedContent struct {
	URL     string `json:"url,omitempty"` // empty for direct uploads
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Size    int    `json:"size"` // length of the source payload before normalization
	Type    string `json:"type"`
}

// Label renders a short provenance label such as "PDF • 42 kB".
func (c *ExtractedContent) Label() string {
	var kind string
	switch c.Type {
	case TypeHTML:
		kind = "HTML"
	case TypePDF:
		kind = "PDF"
	default:
		kind = "Transcript"
	}
	return fmt.Sprintf("%s • %s", kind, humanize.Bytes(uint64(c.Size)))
}

// --- Tool inputs/outputs ---

type FetchContentInput struct {
	URL       string `json:"url" jsonschema:"URL of an HTML page, PDF document or YouTube video"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"Max characters of content (default: MAX_CONTENT_CHARS)"`
}

type FetchContentOutput struct {
	URL       string `json:"url,omitempty"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	Size      int    `json:"size"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	Truncated bool   `json:"truncated"`
}

type FetchContentsInput struct {
	URLs      []string `json:"urls" jsonschema:"URLs to fetch in parallel"`
	MaxLength int      `json:"max_length,omitempty" jsonschema:"Max characters of content per URL (default: MAX_CONTENT_CHARS)"`
}

// FetchContentsItem is one entry of a batch fetch; exactly one of Result or Error is set.
type FetchContentsItem struct {
	URL    string              `json:"url"`
	Result *FetchContentOutput `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

type FetchContentsOutput struct {
	Items []FetchContentsItem `json:"items"`
}

type ExtractPDFInput struct {
	Data      string `json:"data" jsonschema:"Base64-encoded PDF file"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"Max characters of content (default: MAX_CONTENT_CHARS)"`
}
